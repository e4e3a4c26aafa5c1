package frontend

import "errors"

// Precondition errors (§7): a command was called before the state it
// requires was established.
var (
	// ErrNoInputSelected is returned by Optimize or Download when no
	// SelectInput has succeeded yet.
	ErrNoInputSelected = errors.New("frontend: no input selected")

	// ErrNotOptimized is returned by Download when called before any
	// Optimize call on the currently selected input.
	ErrNotOptimized = errors.New("frontend: schedule has not been optimized yet")
)
