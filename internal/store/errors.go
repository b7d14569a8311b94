package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/dinosaur-api/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrDinosaurNotFound, ErrDietNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a second diet with the same public ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references a record that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	ErrDinosaurNotFound = fmt.Errorf("%w: dinosaur", ErrNotFound)
	ErrDietNotFound     = fmt.Errorf("%w: diet", ErrNotFound)
	ErrPeriodNotFound   = fmt.Errorf("%w: period", ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("%w: location", ErrNotFound)
	ErrTaxonomyNotFound = fmt.Errorf("%w: taxonomy", ErrNotFound)
)

// NotFound returns the entity-specific not found error for kind.
func NotFound(kind domain.Kind) error {
	switch kind {
	case domain.KindDinosaur:
		return ErrDinosaurNotFound
	case domain.KindDiet:
		return ErrDietNotFound
	case domain.KindPeriod:
		return ErrPeriodNotFound
	case domain.KindLocation:
		return ErrLocationNotFound
	case domain.KindTaxonomy:
		return ErrTaxonomyNotFound
	}
	return ErrNotFound
}

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific errors wrap ErrNotFound, so a single errors.Is suffices.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    domain.Kind // The entity type (e.g., "dinosaur", "diet")
	Operation string      // The operation that failed (e.g., "find_page", "create")
	Message   string      // Error message
	Err       error       // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity domain.Kind, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
