package domain

import (
	"fmt"
)

// ValidationError rejects an input before it reaches the store. Field holds
// the wire name of the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type StorageErrorKind string

const (
	StorageFailure     StorageErrorKind = "failure"
	IntegrityViolation StorageErrorKind = "integrity_violation"
)

// StorageError wraps a failure from the assignment store. An
// IntegrityViolation means the slot uniqueness constraint fired outside the
// atomic upsert path and must never be swallowed.
type StorageError struct {
	Kind StorageErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
