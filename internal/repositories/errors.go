package repositories

import "errors"

// Discriminated persistence failures. Services inspect these with
// errors.Is and translate them into entity-specific domain errors.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)
