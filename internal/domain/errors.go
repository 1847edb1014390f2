package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation failed")
	ErrExtraction      = errors.New("extraction failed")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrNoSteps         = errors.New("recipe has no steps")
)

// ValidationError reports that a draft could not be normalized into a
// minimally valid recipe. Field names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("validation: missing %s", e.Field)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// ExtractionError wraps a failure of the external extraction
// collaborator. It is recoverable and retryable; the core never
// swallows it.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.URL, e.Err)
}

// Unwrap lets errors.Is match both ErrExtraction and the cause.
func (e *ExtractionError) Unwrap() error { return e.Err }

// Is reports true for ErrExtraction regardless of the cause.
func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }
