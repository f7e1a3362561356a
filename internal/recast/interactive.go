package recast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/recast/internal/body"
	"go.followtheprocess.codes/recast/internal/httpmsg"
)

// Interactive implements the default interactive mode: read a raw HTTP
// message from stdin until EOF, show the extracted body, ask for the source
// and target formats, then show the conversion.
func (r Recast) Interactive(ctx context.Context) error {
	logger := r.logger.WithPrefix("interactive")

	fmt.Fprintln(r.stdout, hue.Bold.Text("recast: interactive mode"))
	fmt.Fprintln(r.stdout, dimmed.Text("Paste a raw HTTP request (or just a body) below, then press Ctrl+D"))

	raw, err := io.ReadAll(r.stdin)
	if err != nil {
		return fmt.Errorf("could not read from stdin: %w", err)
	}

	if strings.TrimSpace(string(raw)) == "" {
		return errors.New("no input received")
	}

	extracted := strings.TrimSpace(httpmsg.Body(string(raw)))
	if extracted == "" {
		return errors.New("could not extract a body from the request")
	}

	logger.Debug("Extracted body", "bytes", len(extracted))

	separator := dimmed.Text(strings.Repeat("─", sepWidth))

	fmt.Fprintf(r.stdout, "\n%s\n%s\n%s\n\n", separator, extracted, separator)

	from, to, err := r.chooseFormats(ctx)
	if err != nil {
		return err
	}

	logger.Debug("Formats chosen", "from", from, "to", to)

	converted, mediaType, err := body.Convert(extracted, from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.stdout)
	r.showConversion("", mediaType, converted)

	return nil
}

// chooseFormats prompts the user to pick the source and target formats from
// the registered format names.
func (r Recast) chooseFormats(ctx context.Context) (from, to string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source format").
				Description("The format the body is currently in").
				Options(huh.NewOptions(body.Names()...)...).
				Value(&from),
			huh.NewSelect[string]().
				Title("Target format").
				Description("The format to convert the body to").
				Options(huh.NewOptions(body.Names()...)...).
				Value(&to),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", "", fmt.Errorf("could not read format selection: %w", err)
	}

	return from, to, nil
}
