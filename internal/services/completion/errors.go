// File: internal/services/completion/errors.go
package completion

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeConfig      ErrorType = "CONFIG"
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypeUnavailable ErrorType = "UNAVAILABLE"
	ErrTypeProvider    ErrorType = "PROVIDER"
)

// Error carries the category the HTTP boundary maps onto a status code:
// VALIDATION -> 400, CONFIG -> 500 (missing key), UNAVAILABLE -> 503,
// PROVIDER -> 500.
type Error struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion %s error in %s: %s (caused by: %v)", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("completion %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *Error {
	return &Error{Type: ErrTypeConfig, Operation: "config", Message: msg}
}

func NewValidationError(operation, msg string) *Error {
	return &Error{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewUnavailableError(operation string, cause error) *Error {
	return &Error{Type: ErrTypeUnavailable, Operation: operation, Message: "provider temporarily unavailable", Cause: cause}
}

func NewProviderError(operation, msg string, cause error) *Error {
	return &Error{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}

// TypeOf classifies any error; non-completion errors count as provider errors.
func TypeOf(err error) ErrorType {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Type
	}
	return ErrTypeProvider
}
