// Package apperror defines the error type that carries an HTTP status from the
// place an error is raised to the handler that renders it.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error pairs a status and a stable code with a message that is safe to log.
// Internal is the cause, if any.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

func (e *Error) Error() string {
	msg := e.Code + ": " + e.Message
	if e.Internal == nil {
		return msg
	}
	return fmt.Sprintf("%s (%v)", msg, e.Internal)
}

func (e *Error) Unwrap() error { return e.Internal }

// WithInternal copies e and attaches cause. Sentinels are never mutated.
func (e *Error) WithInternal(cause error) *Error {
	dup := *e
	dup.Internal = cause
	return &dup
}

// WithMessage copies e with a new message.
func (e *Error) WithMessage(msg string) *Error {
	dup := *e
	dup.Message = msg
	return &dup
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrNotFound = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// NewNotFound reports a missing record, e.g. NewNotFound("page", "about-us").
func NewNotFound(kind, key string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", kind, key))
}

func NewInternal(message string, cause error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(cause)
}

// IsNotFound reports whether err carries a 404 status anywhere in its chain.
func IsNotFound(err error) bool {
	return ToHTTPStatus(err) == http.StatusNotFound
}

// ToHTTPStatus returns the status of the first *Error in err's chain, or 500.
func ToHTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
