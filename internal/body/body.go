// Package body implements recast's conversion engine.
//
// Every supported content type (json, form, xml, plain) is translated through
// a single intermediate representation, the [Value] tree, so that converting
// between any two formats is one parse followed by one format. The engine is
// pure: a call to [Convert] performs no I/O, holds no state between calls and
// is safe for concurrent use.
package body

// Convert converts body from one registered format to another, returning the
// converted body along with the media type of the target format, suitable for
// use in a Content-Type header.
//
// Both from and to must name a registered format, see [Names] for the valid
// values. Matching is case-insensitive and ignores surrounding whitespace.
func Convert(body, from, to string) (converted, mediaType string, err error) {
	source, err := Lookup(from)
	if err != nil {
		return "", "", err
	}

	target, err := Lookup(to)
	if err != nil {
		return "", "", err
	}

	value, err := source.Parse(body)
	if err != nil {
		return "", "", err
	}

	converted, err = target.Format(value)
	if err != nil {
		return "", "", err
	}

	return converted, target.MediaType, nil
}
