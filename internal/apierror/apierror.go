// Package apierror defines the typed errors returned by services and
// rendered by the HTTP error boundary.
package apierror

import (
	"errors"
	"net/http"
)

// Error is an error that carries the HTTP status it should be rendered with.
type Error struct {
	StatusCode int
	Message    string
	Errors     []string
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Wrap returns a copy of e that records cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		StatusCode: e.StatusCode,
		Message:    e.Message,
		Errors:     e.Errors,
		cause:      cause,
	}
}

// WithErrors returns a copy of e with field level details attached.
func (e *Error) WithErrors(details ...string) *Error {
	return &Error{
		StatusCode: e.StatusCode,
		Message:    e.Message,
		Errors:     append([]string(nil), details...),
		cause:      e.cause,
	}
}

func New(status int, message string) *Error {
	return &Error{StatusCode: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, message)
}

// Internal builds a 500 error; cause is kept for logging and never rendered.
func Internal(message string, cause error) *Error {
	return New(http.StatusInternalServerError, message).Wrap(cause)
}

// From converts any error into an *Error, defaulting to 500.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("Internal server error", err)
}

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	return From(err).StatusCode
}
