// ABOUTME: Error types and handling for the countries library
// ABOUTME: Provides structured errors with context for library operations

package countries

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates a country was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates the country list could not be fetched
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates the country list was fetched but could not
	// be decoded
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeConfiguration indicates an invalid option
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeConfiguration, "client is closed")

// IsErrorType reports whether err is a library error of the given type
func IsErrorType(err error, errType ErrorType) bool {
	var libErr *Error
	return errors.As(err, &libErr) && libErr.Type == errType
}
