// Package pipeline defines the error taxonomy shared by the content
// pipeline commands. Validation and store errors abort a run; a missing
// topic or chapter is logged and skipped.
package pipeline

import "errors"

var (
	// ErrValidation marks a malformed chapter payload or natural key.
	// Surfaced before any write is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup or in-place update whose target row
	// does not exist.
	ErrNotFound = errors.New("not found")
)
