package logbook

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets a row the caller does not own.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by the stores when a create hits a uniqueness constraint.
	// Ingestion resolves it internally, it never reaches a client.
	ErrConflict = errors.New("record already exists")

	ErrMainExerciseNotFound = fmt.Errorf("main exercise %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
)

// ValidationError is a user-correctable input problem. Nothing is written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "missing"}
}

// StorageError wraps an underlying persistence failure. The in-flight transaction
// has been rolled back when it is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// asStorageError passes domain errors through untouched and wraps everything else.
func asStorageError(op string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	var storageErr *StorageError
	if errors.As(err, &validationErr) || errors.As(err, &storageErr) || errors.Is(err, ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
