package body_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/recast/internal/body"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name          string // Name of the test case
		input         string // The body to convert
		from          string // Source format
		to            string // Target format
		want          string // Expected converted body
		wantMediaType string // Expected media type label
	}{
		{
			name:          "json to form",
			input:         `{"user":{"name":"Ann","tags":["a","b"]}}`,
			from:          "json",
			to:            "form",
			want:          "user%5Bname%5D=Ann&user%5Btags%5D%5B0%5D=a&user%5Btags%5D%5B1%5D=b",
			wantMediaType: "application/x-www-form-urlencoded",
		},
		{
			name:  "xml to json",
			input: "<root><x>1</x><x>2</x></root>",
			from:  "xml",
			to:    "json",
			want: `{
  "root": {
    "x": [
      "1",
      "2"
    ]
  }
}`,
			wantMediaType: "application/json",
		},
		{
			name:          "plain to plain",
			input:         "already plain",
			from:          "plain",
			to:            "plain",
			want:          "already plain",
			wantMediaType: "text/plain",
		},
		{
			name:          "format names are case insensitive and trimmed",
			input:         `{"a": "1"}`,
			from:          " JSON ",
			to:            "Form",
			want:          "a=1",
			wantMediaType: "application/x-www-form-urlencoded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mediaType, err := body.Convert(tt.input, tt.from, tt.to)
			test.Ok(t, err)

			test.Equal(t, mediaType, tt.wantMediaType)
			test.Diff(t, got, tt.want)
		})
	}
}

func TestConvertUnsupportedFormat(t *testing.T) {
	// The body here is deliberately invalid JSON, an unknown format must
	// fail fast before any parsing is attempted
	_, _, err := body.Convert("{definitely not json", "yaml", "json")
	test.Err(t, err)

	test.True(t, errors.Is(err, body.ErrUnsupportedFormat))
	test.True(t, strings.Contains(err.Error(), `"yaml"`))
	test.True(t, strings.Contains(err.Error(), "json, form, xml, plain"))
}

func TestConvertChecksSourceBeforeTarget(t *testing.T) {
	_, _, err := body.Convert("body", "nope", "alsonope")
	test.Err(t, err)

	test.True(t, strings.Contains(err.Error(), `"nope"`))
	test.True(t, !strings.Contains(err.Error(), "alsonope"))
}

func TestConvertErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string // Name of the test case
		input   string // The body to convert
		from    string // Source format
		to      string // Target format
		wantErr error  // The error kind the failure must wrap
	}{
		{
			name:    "malformed source",
			input:   `{"a":`,
			from:    "json",
			to:      "plain",
			wantErr: body.ErrMalformedInput,
		},
		{
			name:    "shape invalid for target",
			input:   `[1, 2]`,
			from:    "json",
			to:      "xml",
			wantErr: body.ErrInvalidShape,
		},
		{
			name:    "unknown target",
			input:   `{"a": "1"}`,
			from:    "json",
			to:      "toml",
			wantErr: body.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := body.Convert(tt.input, tt.from, tt.to)
			test.Err(t, err)
			test.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range body.Names() {
		t.Run(name, func(t *testing.T) {
			format, err := body.Lookup(name)
			test.Ok(t, err)
			test.Equal(t, format.Name, name)
		})
	}
}

func TestFormatsRegistry(t *testing.T) {
	formats := body.Formats()

	test.Equal(t, len(formats), 4)

	mediaTypes := map[string]string{
		"json":  "application/json",
		"form":  "application/x-www-form-urlencoded",
		"xml":   "text/xml",
		"plain": "text/plain",
	}

	for _, format := range formats {
		test.Equal(t, format.MediaType, mediaTypes[format.Name])
	}
}

// TestConvertCorpus runs every conversion case under testdata/convert. Each
// archive is named "<from>_to_<to>.txtar" and holds two files, "body.<from>"
// and "want.<to>".
func TestConvertCorpus(t *testing.T) {
	pattern := filepath.Join("testdata", "convert", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	test.True(t, len(files) > 0, test.Context("no corpus archives matching %s", pattern))

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			from, to, ok := strings.Cut(name, "_to_")
			test.True(t, ok, test.Context("%s should be named '<from>_to_<to>.txtar'", file))

			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			input, ok := archive.Read("body." + from)
			test.True(t, ok, test.Context("%s missing body.%s", file, from))

			want, ok := archive.Read("want." + to)
			test.True(t, ok, test.Context("%s missing want.%s", file, to))

			got, mediaType, err := body.Convert(trimArchiveFile(input), from, to)
			test.Ok(t, err)

			target, err := body.Lookup(to)
			test.Ok(t, err)

			test.Equal(t, mediaType, target.MediaType)
			test.Diff(t, got, trimArchiveFile(want))
		})
	}
}

// trimArchiveFile drops the trailing newline that txtar guarantees on every
// file so archive contents can be compared against raw conversion output.
func trimArchiveFile(contents string) string {
	return strings.TrimSuffix(contents, "\n")
}
