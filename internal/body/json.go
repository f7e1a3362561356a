package body

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// jsonIndent is the indentation used for formatted JSON output.
const jsonIndent = "  "

// parseJSON decodes a JSON text into a [Value].
//
// It reads the decoder token by token rather than unmarshalling into a Go
// map, because a map would throw away the document's key order and the exact
// lexemes of its numbers, both of which the engine preserves.
func parseJSON(body string) (Value, error) {
	decoder := json.NewDecoder(strings.NewReader(body))
	decoder.UseNumber()

	value, err := decodeJSONValue(decoder, 0)
	if err != nil {
		return nil, malformedJSON(err)
	}

	// A valid body is a single JSON value, anything after it is junk. The
	// decoder must be fully drained to catch it: More is not enough because
	// it treats a stray close delimiter as the end of input
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, malformedJSON(err)
		}

		return nil, fmt.Errorf(
			"%w: unexpected data after JSON value at offset %d",
			ErrMalformedInput,
			decoder.InputOffset(),
		)
	}

	return value, nil
}

// decodeJSONValue decodes the next complete JSON value from decoder.
func decodeJSONValue(decoder *json.Decoder, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting exceeds the maximum depth of %d", maxDepth)
	}

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch token := token.(type) {
	case json.Delim:
		switch token {
		case '{':
			return decodeJSONObject(decoder, depth)
		case '[':
			return decodeJSONArray(decoder, depth)
		default:
			// The decoder balances delimiters itself so this is unreachable,
			// but the switch must be exhaustive
			return nil, fmt.Errorf("unexpected delimiter %q", token)
		}
	case string:
		return Scalar{Text: token}, nil
	case json.Number:
		return Scalar{Text: token.String(), Literal: true}, nil
	case bool:
		return Scalar{Text: strconv.FormatBool(token), Literal: true}, nil
	case nil:
		return Scalar{Text: "null", Literal: true}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", token)
	}
}

// decodeJSONObject decodes a JSON object, the opening '{' having already been
// consumed from decoder.
func decodeJSONObject(decoder *json.Decoder, depth int) (*Object, error) {
	object := NewObject()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", token)
		}

		value, err := decodeJSONValue(decoder, depth+1)
		if err != nil {
			return nil, err
		}

		object.Set(key, value)
	}

	// Consume the closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return object, nil
}

// decodeJSONArray decodes a JSON array, the opening '[' having already been
// consumed from decoder.
func decodeJSONArray(decoder *json.Decoder, depth int) (Array, error) {
	array := Array{}

	for decoder.More() {
		value, err := decodeJSONValue(decoder, depth+1)
		if err != nil {
			return nil, err
		}

		array = append(array, value)
	}

	// Consume the closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return array, nil
}

// malformedJSON wraps a JSON decoding error as [ErrMalformedInput], keeping
// the decoder's position diagnostic where it has one.
func malformedJSON(err error) error {
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return fmt.Errorf(
			"%w: invalid JSON at offset %d: %s",
			ErrMalformedInput,
			syntaxError.Offset,
			syntaxError.Error(),
		)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of JSON input", ErrMalformedInput)
	}

	return fmt.Errorf("%w: %s", ErrMalformedInput, err)
}

// formatJSON encodes a [Value] as indented, human readable JSON.
func formatJSON(value Value) (string, error) {
	encoded, err := json.MarshalIndent(value, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("could not encode JSON: %w", err)
	}

	return string(encoded), nil
}

// MarshalJSON implements [json.Marshaler] for a [Scalar].
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.Literal {
		return []byte(s.Text), nil
	}

	return json.Marshal(s.Text)
}

// MarshalJSON implements [json.Marshaler] for an [*Object], emitting keys in
// insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')

	for i, key := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')

		value, _ := o.Get(key)

		encodedValue, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(encodedValue)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
