package models

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or missing input: a required field
// absent, a bad date, or a bad sort field/direction.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with an explicit message
// and the fields it concerns.
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: message}
}

// MissingFieldsError builds the aggregated missing-field error.
func MissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Missing fields: " + strings.Join(fields, ", "),
	}
}

// NotFoundError reports that no post has the requested ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post %d not found", e.ID)
}

// StorageError reports a persistence read or write failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
