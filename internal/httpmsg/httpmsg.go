// Package httpmsg provides helpers for picking apart raw HTTP message blobs
// without fully parsing them.
//
// recast's input is typically a whole request copied out of a proxy or a
// browser's dev tools, so all that's needed here is locating the header/body
// separator. The conversion engine itself only ever sees the body string.
package httpmsg

import "strings"

// Body isolates and returns the body portion of a raw HTTP message.
//
// The message is split at the first blank line, trying the standard CRLF
// separator first and falling back to bare LF for messages that have been
// through an editor or clipboard. If no separator is found the whole input is
// assumed to be the body.
func Body(raw string) string {
	if _, body, found := strings.Cut(raw, "\r\n\r\n"); found {
		return body
	}

	if _, body, found := strings.Cut(raw, "\n\n"); found {
		return body
	}

	return raw
}
