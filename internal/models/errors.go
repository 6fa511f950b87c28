package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is wrapped by DecodingError when a required key is absent or null.
var ErrMissingField = errors.New("required field missing")

// ErrUnknownFieldKind is wrapped by DecodingError when a field type names a variant
// this package does not know.
var ErrUnknownFieldKind = errors.New("unknown field type variant")

// DecodingError reports a catalog record that does not match the expected entity shape.
type DecodingError struct {
	// Entity is the entity being decoded, e.g. "AssetType".
	Entity string
	// Field is the wire key at fault, dotted for nested entities ("Class.Value").
	// Empty when the record as a whole is malformed.
	Field string
	// Index is the position of the record in the response list, or -1.
	Index int
	Err   error
}

func newDecodingError(entity, field string, err error) *DecodingError {
	return &DecodingError{Entity: entity, Field: field, Index: -1, Err: err}
}

func (e *DecodingError) Error() string {
	var b strings.Builder
	b.WriteString("decoding ")
	b.WriteString(e.Entity)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodingError) Unwrap() error { return e.Err }
