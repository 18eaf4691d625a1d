package service

import (
	"errors"
	"fmt"

	"taskboard/internal/storage"
)

var (
	// ErrInvalidTitle is wrapped by ValidationError for empty titles.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrNotFound is wrapped by NotFoundError. Same value as storage.ErrNotFound.
	ErrNotFound = storage.ErrNotFound
)

// ValidationError reports input that breaks a task rule.
type ValidationError struct {
	Field string // name of the offending input
	Err   error  // underlying error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a task ID with no matching task.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrNotFound, e.ID)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
