package body

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// xmlIndent is the indentation used for formatted XML output.
const xmlIndent = "  "

// parseXML decodes an XML document into a [Value].
//
// The result is always an [*Object] with exactly one key: the root element's
// local tag name. Element conversion follows these rules:
//
//   - A leaf element with non-blank text becomes a [Scalar] of the trimmed text
//   - An element with child elements becomes an [*Object] keyed by the
//     children's local tag names, repeated tags aggregating into an [Array]
//     in document order
//   - Text is only captured at leaves, an element with children contributes
//     no text of its own
//
// Namespace prefixes and URIs are stripped, only local names are kept.
// Attributes, comments and processing instructions are dropped.
func parseXML(body string) (Value, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))

	root, err := nextRootElement(decoder)
	if err != nil {
		return nil, err
	}

	rootValue, err := parseXMLElement(decoder, 0)
	if err != nil {
		return nil, err
	}

	// Anything other than whitespace or comments after the root element
	// makes the document invalid
	if err := expectXMLTrailer(decoder); err != nil {
		return nil, err
	}

	document := NewObject()
	document.Set(root.Name.Local, rootValue)

	return document, nil
}

// nextRootElement reads tokens until the document's root [xml.StartElement],
// skipping the prolog (declaration, comments, whitespace).
func nextRootElement(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, fmt.Errorf("%w: XML document has no root element", ErrMalformedInput)
			}

			return xml.StartElement{}, malformedXML(err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			return token, nil
		case xml.CharData:
			if text := strings.TrimSpace(string(token)); text != "" {
				return xml.StartElement{}, fmt.Errorf("%w: text %q before XML root element", ErrMalformedInput, text)
			}
		default:
			// Prolog content, skip it
		}
	}
}

// parseXMLElement converts the element whose [xml.StartElement] has just been
// consumed from decoder, reading up to and including its end tag.
func parseXMLElement(decoder *xml.Decoder, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf(
			"%w: XML nesting exceeds the maximum depth of %d",
			ErrMalformedInput,
			maxDepth,
		)
	}

	children := NewObject()
	hasChildren := false
	text := &strings.Builder{}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, malformedXML(err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			hasChildren = true

			child, err := parseXMLElement(decoder, depth+1)
			if err != nil {
				return nil, err
			}

			children.Append(token.Name.Local, child)
		case xml.EndElement:
			// The decoder guarantees this is our own end tag, anything
			// mismatched surfaces as a syntax error from Token
			if !hasChildren {
				if trimmed := strings.TrimSpace(text.String()); trimmed != "" {
					return Scalar{Text: trimmed}, nil
				}
			}

			return children, nil
		case xml.CharData:
			text.Write(token)
		default:
			// Comments and processing instructions are not represented
		}
	}
}

// expectXMLTrailer consumes everything after the root element, reporting an
// error if any content other than whitespace or comments remains.
func expectXMLTrailer(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return malformedXML(err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			return fmt.Errorf("%w: unexpected element <%s> after XML root element", ErrMalformedInput, token.Name.Local)
		case xml.CharData:
			if text := strings.TrimSpace(string(token)); text != "" {
				return fmt.Errorf("%w: text %q after XML root element", ErrMalformedInput, text)
			}
		default:
			// Trailing comments etc. are harmless
		}
	}
}

// malformedXML wraps an XML decoding error as [ErrMalformedInput].
func malformedXML(err error) error {
	var syntaxError *xml.SyntaxError
	if errors.As(err, &syntaxError) {
		return fmt.Errorf(
			"%w: invalid XML on line %d: %s",
			ErrMalformedInput,
			syntaxError.Line,
			syntaxError.Msg,
		)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of XML input", ErrMalformedInput)
	}

	return fmt.Errorf("%w: %s", ErrMalformedInput, err)
}

// formatXML encodes a [Value] as an indented XML document.
//
// The input must be an [*Object] with exactly one key, which becomes the root
// element's tag. Objects become child elements, an array under a key becomes
// one sibling element per item all sharing that key as their tag, and scalars
// become element text. Serialisation goes through a single [xml.Encoder] pass
// rather than any manual tag concatenation.
func formatXML(value Value) (string, error) {
	document, ok := value.(*Object)
	if !ok {
		return "", fmt.Errorf(
			"%w: xml output requires an object with a single root key, got %s",
			ErrInvalidShape,
			kindOf(value),
		)
	}

	if document.Len() != 1 {
		return "", fmt.Errorf(
			"%w: xml output requires an object with a single root key, got %d keys",
			ErrInvalidShape,
			document.Len(),
		)
	}

	root := document.Keys()[0]
	rootValue, _ := document.Get(root)

	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(buf)
	encoder.Indent("", xmlIndent)

	if err := encodeXMLElement(encoder, root, rootValue, 0); err != nil {
		return "", err
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("could not encode XML: %w", err)
	}

	return buf.String(), nil
}

// encodeXMLElement writes value as one element (or, for an [Array], a run of
// sibling elements) named name.
func encodeXMLElement(encoder *xml.Encoder, name string, value Value, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf(
			"%w: nesting exceeds the maximum depth of %d",
			ErrInvalidShape,
			maxDepth,
		)
	}

	// An array is a run of siblings, not an element of its own
	if array, ok := value.(Array); ok {
		for _, item := range array {
			if err := encodeXMLElement(encoder, name, item, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := encoder.EncodeToken(start); err != nil {
		return fmt.Errorf("could not encode XML: %w", err)
	}

	switch value := value.(type) {
	case Scalar:
		if err := encoder.EncodeToken(xml.CharData(value.Text)); err != nil {
			return fmt.Errorf("could not encode XML: %w", err)
		}
	case *Object:
		for _, key := range value.Keys() {
			child, _ := value.Get(key)

			if err := encodeXMLElement(encoder, key, child, depth+1); err != nil {
				return err
			}
		}
	}

	if err := encoder.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("could not encode XML: %w", err)
	}

	return nil
}
