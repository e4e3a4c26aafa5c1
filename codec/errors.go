package codec

import "errors"

// Errors for malformed event fields. Every message names the missing or
// invalid field.
var (
	// ErrMissingName is returned when a field's name portion is empty.
	ErrMissingName = errors.New(`codec: missing field: "name"`)

	// ErrMissingLeader is returned when a field has a ':' separator but no
	// leader text after it.
	ErrMissingLeader = errors.New(`codec: missing field: "leader"`)

	// ErrMissingLen is returned when a field ends in ']' but has no matching
	// '[' to delimit the length.
	ErrMissingLen = errors.New(`codec: missing field: "len"`)

	// ErrInvalidLen is returned when the bracketed length is not a positive
	// integer.
	ErrInvalidLen = errors.New(`codec: field "len" expected type: <integer>`)
)
