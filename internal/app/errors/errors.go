package errors

import (
	"fmt"
	"strings"
)

// Common error types
var (
	// Configuration errors
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")

	// Catalog errors
	ErrInvalidCatalog = New("invalid catalog")
	ErrDuplicateID    = New("duplicate provider id")

	// Lookup errors
	ErrNotFound = New("not found")

	// Input errors
	ErrInvalidInput = New("invalid input")

	// File errors
	ErrFileNotFound    = New("file not found")
	ErrFileReadFailed  = New("file read failed")
	ErrFileWriteFailed = New("file write failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Wrapf(ErrInvalidInput, "%s is invalid: %s", field, reason)
}

// OutOfRange returns an error for values outside acceptable range
func OutOfRange(field string, min, max interface{}) error {
	return Wrapf(ErrInvalidInput, "%s out of range (must be between %v and %v)", field, min, max)
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return Wrapf(ErrNotFound, "%s %q", itemType, identifier)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "out of range")
}
