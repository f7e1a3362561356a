package body

// maxDepth is the nesting depth ceiling enforced by the recursive parse and
// format walks, guarding against stack exhaustion on adversarial input.
const maxDepth = 1000

// Value is the interface for the intermediate representation that every body
// format is converted to and from.
//
// A Value is one of exactly three things: a [Scalar], an [*Object] or an
// [Array]. It is built entirely by one parser call, consumed entirely by one
// formatter call, and then discarded.
type Value interface {
	valueNode() // Prevents types outside this package implementing Value
}

// Scalar is a [Value] holding a single text value.
//
// All scalar values are carried as strings because form encoding and plain
// text have no native type system. The one concession is Literal, which lets
// JSON round trip its numbers, booleans and nulls without mangling them.
type Scalar struct {
	// Text is the scalar's value as text.
	Text string

	// Literal marks Text as a verbatim JSON lexeme (a number, "true",
	// "false" or "null") that should be re-emitted unquoted when the
	// scalar is formatted as JSON. Every other format just uses Text.
	Literal bool
}

// valueNode marks a [Scalar] as a [Value].
func (s Scalar) valueNode() {}

// Array is a [Value] holding an ordered sequence of values.
type Array []Value

// valueNode marks an [Array] as a [Value].
func (a Array) valueNode() {}

// Object is a [Value] holding an ordered mapping of unique string keys to
// values.
//
// Iteration order is insertion order, which is why this is not simply a Go
// map: converting `{"b": 1, "a": 2}` to form encoding must yield b before a.
type Object struct {
	values map[string]Value
	keys   []string
}

// NewObject returns a new empty [*Object].
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// valueNode marks an [*Object] as a [Value].
func (o *Object) valueNode() {}

// Set stores value under key. If key is already present its value is
// replaced and it keeps its original position.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Append adds value under key, aggregating repeated keys.
//
// The first value for a key is stored as-is, a second occurrence turns the
// entry into an [Array] of both, and any later occurrence appends to that
// array. This is the rule shared by the form parser (repeated query keys)
// and the XML parser (repeated child tags).
func (o *Object) Append(key string, value Value) {
	existing, ok := o.Get(key)
	if !ok {
		o.Set(key, value)
		return
	}

	if array, ok := existing.(Array); ok {
		o.Set(key, append(array, value))
		return
	}

	o.Set(key, Array{existing, value})
}

// Keys returns the object's keys in insertion order. The returned slice is
// shared with the object and must not be modified.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// kindOf names the concrete kind of a [Value] for use in error messages.
func kindOf(v Value) string {
	switch v.(type) {
	case Scalar:
		return "scalar"
	case *Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}
