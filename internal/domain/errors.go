package domain

import "errors"

// Scheduling error taxonomy. Use-case packages wrap these so callers can map
// them with errors.Is regardless of which layer produced them.
var (
	// ErrConflict candidate interval overlaps an active reservation on the same resource
	ErrConflict = errors.New("time slot unavailable")

	// ErrValidation malformed interval or duration below the minimum
	ErrValidation = errors.New("validation failed")

	// ErrNotFound target reservation no longer exists
	ErrNotFound = errors.New("not found")
)
