package body

import "errors"

// The error kinds reported by the conversion engine. Every error returned
// from this package wraps exactly one of these sentinels so callers can
// classify failures with [errors.Is].
var (
	// ErrUnsupportedFormat means a requested source or target format name
	// is not registered. It is reported before any parsing work happens.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedInput means the source body does not conform to its
	// declared format's grammar, e.g. invalid JSON or unparseable XML.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidShape means a parsed value is structurally incompatible
	// with the target format, e.g. a bare array formatted as xml.
	ErrInvalidShape = errors.New("invalid shape")
)
