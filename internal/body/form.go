package body

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// parseForm decodes an application/x-www-form-urlencoded string into a flat
// [*Object].
//
// A key seen once maps to a [Scalar], a key seen more than once becomes an
// [Array] of scalars in first-seen order. Bracket-path keys like "user[name]"
// are deliberately NOT reconstructed into nested objects, the full key is
// kept literally. Parsing is therefore not the inverse of the flattening
// performed by formatForm, form round trips are lossy by design.
func parseForm(body string) (Value, error) {
	object := NewObject()

	for pair := range strings.SplitSeq(body, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form key %q: %s", ErrMalformedInput, rawKey, err)
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form value %q: %s", ErrMalformedInput, rawValue, err)
		}

		object.Append(key, Scalar{Text: value})
	}

	return object, nil
}

// formatForm encodes a [Value] as an application/x-www-form-urlencoded
// string, flattening nested structure into bracket-path keys.
//
// The input must be an [*Object] at the top level. An object's child key c
// under parent path p flattens to p[c] (bare c at the root), an array element
// at index i flattens to p[i], and recursion bottoms out at scalars which
// become the flattened key's value. Output order is insertion order.
func formatForm(value Value) (string, error) {
	object, ok := value.(*Object)
	if !ok {
		return "", fmt.Errorf(
			"%w: form output requires an object at the top level, got %s",
			ErrInvalidShape,
			kindOf(value),
		)
	}

	pairs, err := flatten(object, "", 0)
	if err != nil {
		return "", err
	}

	builder := &strings.Builder{}

	for i, pair := range pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String(), nil
}

// pair is a single flattened key/value pair. A slice of pairs rather than a
// map so that flattening preserves insertion order.
type pair struct {
	key   string
	value string
}

// flatten recursively flattens value into bracket-path pairs under path.
func flatten(value Value, path string, depth int) ([]pair, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf(
			"%w: nesting exceeds the maximum depth of %d",
			ErrInvalidShape,
			maxDepth,
		)
	}

	switch value := value.(type) {
	case Scalar:
		return []pair{{key: path, value: value.Text}}, nil
	case *Object:
		var pairs []pair

		for _, key := range value.Keys() {
			child, _ := value.Get(key)

			childPath := key
			if path != "" {
				childPath = path + "[" + key + "]"
			}

			flattened, err := flatten(child, childPath, depth+1)
			if err != nil {
				return nil, err
			}

			pairs = append(pairs, flattened...)
		}

		return pairs, nil
	case Array:
		var pairs []pair

		for i, item := range value {
			childPath := path + "[" + strconv.Itoa(i) + "]"

			flattened, err := flatten(item, childPath, depth+1)
			if err != nil {
				return nil, err
			}

			pairs = append(pairs, flattened...)
		}

		return pairs, nil
	default:
		return nil, fmt.Errorf("%w: unknown value kind", ErrInvalidShape)
	}
}
