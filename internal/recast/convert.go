package recast

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/recast/internal/body"
	"go.followtheprocess.codes/recast/internal/httpmsg"
	"golang.org/x/sync/errgroup"
)

// ConvertOptions are the options passed to the convert subcommand.
type ConvertOptions struct {
	// From is the short name of the format the body is currently in.
	From string

	// To is the short name of the format to convert the body to.
	To string

	// Output is the name of a file in which to save the converted body, if
	// empty, the result is printed to stdout.
	Output string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ConvertOptions are valid, returning a non-nil
// error if they're not. Note that the source format is checked before the
// target.
func (c ConvertOptions) Validate() error {
	if c.From == "" {
		return errors.New("missing --from: the format the body is currently in")
	}

	if c.To == "" {
		return errors.New("missing --to: the format to convert the body to")
	}

	if _, err := body.Lookup(c.From); err != nil {
		return err
	}

	if _, err := body.Lookup(c.To); err != nil {
		return err
	}

	return nil
}

// conversion is the result of converting a single file.
type conversion struct {
	file      string // The file the body came from
	mediaType string // Media type of the converted body
	body      string // The converted body itself
}

// Convert implements the convert subcommand, converting the bodies of one or
// more raw HTTP message files between content types.
//
// Files are converted concurrently, the engine is pure so this needs no
// coordination, but output is shown in argument order once everything has
// succeeded.
func (r Recast) Convert(ctx context.Context, files []string, options ConvertOptions) error {
	logger := r.logger.WithPrefix("convert")
	logger.Debug("Convert configuration", "options", fmt.Sprintf("%+v", options))

	if err := options.Validate(); err != nil {
		return err
	}

	if options.Output != "" && len(files) > 1 {
		return errors.New("--output can only be used when converting a single file")
	}

	start := time.Now()

	results := make([]conversion, len(files))

	group := errgroup.Group{}

	for i, file := range files {
		group.Go(func() error {
			converted, mediaType, err := r.convertFile(file, options)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			results[i] = conversion{file: file, mediaType: mediaType, body: converted}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Debug("Converted all files", "count", len(files), "took", time.Since(start))

	if options.Output != "" {
		result := results[0]

		if err := os.WriteFile(options.Output, []byte(result.body+"\n"), 0o644); err != nil {
			return fmt.Errorf("could not write %s: %w", options.Output, err)
		}

		msg.Fsuccess(r.stdout, "Converted %s -> %s (%s)", result.file, options.Output, result.mediaType)

		return nil
	}

	for _, result := range results {
		// Only label the output when there's more than one file to tell apart
		file := ""
		if len(results) > 1 {
			file = result.file
		}

		r.showConversion(file, result.mediaType, result.body)
	}

	return nil
}

// convertFile reads a single raw message file, extracts its body and converts
// it per options.
func (r Recast) convertFile(file string, options ConvertOptions) (converted, mediaType string, err error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("could not read file: %w", err)
	}

	extracted := strings.TrimSpace(httpmsg.Body(string(raw)))
	if extracted == "" {
		return "", "", errors.New("could not extract a body from the message")
	}

	return body.Convert(extracted, options.From, options.To)
}

// showConversion prints a converted body along with its new Content-Type
// header to stdout. A non-empty file labels the output with its origin.
func (r Recast) showConversion(file, mediaType, converted string) {
	if file != "" {
		fmt.Fprintf(r.stdout, "%s\n%s\n", hue.Bold.Text(file), dimmed.Text(strings.Repeat("─", sepWidth)))
	}

	fmt.Fprintf(r.stdout, "%s: %s\n\n", headerKeyStyle.Text("Content-Type"), mediaType)
	fmt.Fprintln(r.stdout, converted)
}
