package body

// parsePlain wraps a raw text body, unchanged, as an [*Object] with a single
// "text" key.
func parsePlain(body string) (Value, error) {
	object := NewObject()
	object.Set("text", Scalar{Text: body})

	return object, nil
}

// formatPlain encodes a [Value] as plain text.
//
// If the value is an [*Object] with a "text" key, that key's text is emitted
// as-is. Any other shape falls back to indented JSON so that plain output can
// never fail, it is the only formatter with that guarantee.
func formatPlain(value Value) (string, error) {
	if object, ok := value.(*Object); ok {
		if text, ok := object.Get("text"); ok {
			if scalar, ok := text.(Scalar); ok {
				return scalar.Text, nil
			}

			// A structured "text" value has no native plain rendering,
			// fall back to JSON for it
			return formatJSON(text)
		}
	}

	return formatJSON(value)
}
