package schedule

import "errors"

// Sentinel errors for the schedule package. Callers compare with errors.Is.
// None of these represent programmer bugs — see invariant.go for that case.
var (
	// ErrEmptyName indicates NewEvent was called with an empty display name.
	ErrEmptyName = errors.New("schedule: event name is empty")

	// ErrInvalidLength indicates NewEvent was called with a non-positive length.
	ErrInvalidLength = errors.New("schedule: event length must be >= 1")

	// ErrRowOutOfRange indicates a row index outside [0, len(rows)) was used.
	ErrRowOutOfRange = errors.New("schedule: row index out of range")

	// ErrEventOutOfRange indicates an event index outside a row's bounds was used.
	ErrEventOutOfRange = errors.New("schedule: event index out of range")

	// ErrPermutationMismatch indicates SetRowOrder received a slice that is not
	// a permutation of the row's current indices.
	ErrPermutationMismatch = errors.New("schedule: not a valid permutation of the row")
)
