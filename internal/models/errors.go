package models

import "errors"

// Error categories. Every service error wraps exactly one of these so callers can
// branch with errors.Is without knowing the concrete failure.
var (
	// ErrValidation marks bad shape, length or format on user input
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an operation on an id that is no longer in the store
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation such as a duplicate email
	ErrConflict = errors.New("conflict")

	// ErrPersistence marks a serialization or storage failure
	ErrPersistence = errors.New("persistence error")
)
