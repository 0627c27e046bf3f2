// Package apperr defines the domain error taxonomy shared by the service
// and handler layers: validation failures and missing records are expected
// outcomes, everything else is a store fault.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced record does not exist
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NotFound creates a NotFoundError for the given resource and id
func NotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError indicates a required field is missing or empty
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a ValidationError with the given message
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
