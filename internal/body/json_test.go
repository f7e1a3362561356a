package body_test

import (
	"errors"
	"strings"
	"testing"

	"go.followtheprocess.codes/recast/internal/body"
	"go.followtheprocess.codes/test"
)

// reformatJSON parses its input as JSON and formats it straight back,
// a convenient way of inspecting what a parse produced.
func reformatJSON(t *testing.T, input string) string {
	t.Helper()

	format, err := body.Lookup("json")
	test.Ok(t, err)

	value, err := format.Parse(input)
	test.Ok(t, err)

	out, err := format.Format(value)
	test.Ok(t, err)

	return out
}

func TestJSONPreservesKeyOrder(t *testing.T) {
	got := reformatJSON(t, `{"b": 1, "a": "x", "c": true}`)

	want := `{
  "b": 1,
  "a": "x",
  "c": true
}`

	test.Diff(t, got, want)
}

func TestJSONRoundTrip(t *testing.T) {
	// Inputs already in canonical (2 space indented) form so that a
	// parse/format round trip must reproduce them exactly
	tests := []struct {
		name  string // Name of the test case
		input string // Canonical JSON input
	}{
		{name: "empty object", input: `{}`},
		{name: "empty array", input: `[]`},
		{name: "string", input: `"hello"`},
		{name: "integer", input: `42`},
		{name: "float", input: `3.14`},
		{name: "exponent keeps its lexeme", input: `1e3`},
		{name: "bool", input: `true`},
		{name: "null", input: `null`},
		{
			name: "nested",
			input: `{
  "user": {
    "name": "Ann",
    "age": 37,
    "tags": [
      "a",
      "b"
    ],
    "active": true,
    "nickname": null
  }
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Diff(t, reformatJSON(t, tt.input), tt.input)
		})
	}
}

func TestJSONParseMalformed(t *testing.T) {
	tests := []struct {
		name  string // Name of the test case
		input string // Invalid JSON input
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   \n"},
		{name: "unterminated object", input: `{"a": 1`},
		{name: "not json", input: "certainly not json"},
		{name: "bad literal", input: "nul"},
		{name: "trailing data", input: `{"a": 1} {"b": 2}`},
		{name: "trailing close bracket", input: `{"a": 1}]`},
		{name: "trailing close brace", input: `42}`},
		{name: "two scalars", input: `1 2`},
		{name: "unquoted key", input: `{a: 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := body.Lookup("json")
			test.Ok(t, err)

			_, err = format.Parse(tt.input)
			test.Err(t, err)
			test.True(t, errors.Is(err, body.ErrMalformedInput))
		})
	}
}

func TestJSONParseMalformedDiagnostic(t *testing.T) {
	format, err := body.Lookup("json")
	test.Ok(t, err)

	_, err = format.Parse(`{"a": oops}`)
	test.Err(t, err)

	// The decoder's position should survive into the message
	test.True(t, strings.Contains(err.Error(), "offset"))
}
