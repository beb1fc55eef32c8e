package node

import "strings"

// EncodingState records what we know about the escapes in a stored
// string. It drives whether the document must encode on write or
// decode on read.
type EncodingState uint8

const (
	// StateCheck means the string has not been analyzed yet
	StateCheck EncodingState = iota
	// StateNone means the string is verbatim, no escapes present
	StateNone
	// StateEncoded means entity escapes have already been applied
	StateEncoded
	// StateDecoded means entity escapes have been resolved
	StateDecoded
)

// Value is the internal wrapper for textual content of attribute
// values, text, CDATA, comments, PIs, public IDs and entity
// replacement text.
type Value struct {
	s     string
	state EncodingState
}

func NewValue(s string) Value {
	return Value{s: s, state: StateCheck}
}

// DecodedValue marks s as having had its escapes resolved already
// (the parser stores decoded text this way)
func DecodedValue(s string) Value {
	return Value{s: s, state: StateDecoded}
}

// EncodedValue marks s as already carrying escapes; writing it again
// is a no-op pass-through
func EncodedValue(s string) Value {
	return Value{s: s, state: StateEncoded}
}

// RawValue marks s as verbatim: Encoded returns it as-is, without
// escaping any of the predefined specials it may contain
func RawValue(s string) Value {
	return Value{s: s, state: StateNone}
}

func (v Value) String() string {
	return v.s
}

func (v Value) State() EncodingState {
	return v.state
}

// Encoded returns the string with the five predefined specials
// escaped. A value in StateEncoded is returned unchanged; a value
// with no specials is returned as-is after a fast prefix test.
func (v *Value) Encoded() string {
	switch v.state {
	case StateEncoded, StateNone:
		return v.s
	}
	if strings.IndexAny(v.s, escapeSet) < 0 {
		v.state = StateNone
		return v.s
	}
	return EncodeSpecials(v.s)
}

// Decoded resolves entity escapes against the given table. A value
// in StateDecoded or StateNone is returned unchanged.
func (v *Value) Decoded(entities *EntityTable) (string, error) {
	switch v.state {
	case StateDecoded, StateNone:
		return v.s, nil
	}
	if strings.IndexByte(v.s, '&') < 0 {
		v.state = StateNone
		return v.s, nil
	}
	return entities.Decode(v.s)
}
