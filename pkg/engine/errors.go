package engine

import "errors"

var (
	// ErrInvalidInput marks rejected input: an empty task list, a
	// non-positive burst or quantum, or a negative arrival/priority.
	// No partial schedule is returned alongside it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedSchedule marks an internal consistency failure, e.g. a
	// task that never appears in the produced schedule. It is a defect in
	// the algorithm engine and is surfaced to the caller, never patched.
	ErrMalformedSchedule = errors.New("malformed schedule")
)
