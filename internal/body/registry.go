package body

import (
	"fmt"
	"slices"
	"strings"
)

// Format is a single registered body format: a short name, the wire media
// type reported for converted output, and the parser/formatter pair that
// translates between the wire form and a [Value].
type Format struct {
	parse  func(string) (Value, error)
	format func(Value) (string, error)

	// Name is the format's short name, e.g. "json".
	Name string

	// MediaType is the media type label for a Content-Type header.
	MediaType string
}

// Parse decodes a body in this format into a [Value]. Failures wrap
// [ErrMalformedInput].
func (f Format) Parse(body string) (Value, error) {
	return f.parse(body)
}

// Format encodes a [Value] as a body in this format. Failures wrap
// [ErrInvalidShape].
func (f Format) Format(value Value) (string, error) {
	return f.format(value)
}

// registry is the static table of supported formats, built once and never
// mutated. Slice order is the order names are listed to users.
var registry = [...]Format{
	{Name: "json", MediaType: "application/json", parse: parseJSON, format: formatJSON},
	{Name: "form", MediaType: "application/x-www-form-urlencoded", parse: parseForm, format: formatForm},
	{Name: "xml", MediaType: "text/xml", parse: parseXML, format: formatXML},
	{Name: "plain", MediaType: "text/plain", parse: parsePlain, format: formatPlain},
}

// Lookup returns the [Format] registered under name. Matching is
// case-insensitive and ignores surrounding whitespace.
//
// An unknown name reports [ErrUnsupportedFormat], naming the offending value
// and listing the valid names.
func Lookup(name string) (Format, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))

	for _, format := range registry {
		if format.Name == cleaned {
			return format, nil
		}
	}

	return Format{}, fmt.Errorf(
		"%w: %q, valid formats are %s",
		ErrUnsupportedFormat,
		name,
		strings.Join(Names(), ", "),
	)
}

// Formats returns every registered [Format] in registration order.
func Formats() []Format {
	return slices.Clone(registry[:])
}

// Names returns the short name of every registered format in registration
// order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, format := range registry {
		names = append(names, format.Name)
	}

	return names
}
