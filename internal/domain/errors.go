package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a public ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownKind is returned when a path segment names no entity type.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrTaxonomyCycle is returned when following taxonomy parents loops back
	// to a taxonomy already visited.
	ErrTaxonomyCycle = errors.New("taxonomy parent cycle")

	// ErrUnknownParent is returned when a taxonomy names a parent that is not
	// part of the same tree.
	ErrUnknownParent = errors.New("unknown taxonomy parent")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(kind Kind, field, message string, err error) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + "." + e.Field + " " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
