// Package errors provides coded domain errors for the moodreel API.
//
// Services return *Error values; the API layer renders them as {"error": message}
// with the status from HTTPStatus:
//
//	if req.Mood == "" {
//	    return nil, errors.Validation("Mood and at least one genre are required")
//	}
//
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    status := domainErr.HTTPStatus()
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
	New    = errors.New
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeValidation        Code = "VALIDATION"
	CodeConfiguration     Code = "CONFIGURATION"
	CodeUpstream          Code = "UPSTREAM"
	CodeMalformedResponse Code = "MALFORMED_RESPONSE"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInternal          Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status code for an error code.
// Every failure inside a recommendation run is reported as 400; only a
// missing server credential or an unexpected fault is a 500.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeUpstream, CodeMalformedResponse:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Sentinel errors for use with errors.Is().
var (
	ErrValidation        = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConfiguration     = &Error{Code: CodeConfiguration, Message: "server is not configured"}
	ErrUpstream          = &Error{Code: CodeUpstream, Message: "upstream error"}
	ErrMalformedResponse = &Error{Code: CodeMalformedResponse, Message: "malformed upstream response"}
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInternal          = &Error{Code: CodeInternal, Message: "internal error"}
)

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Configuration creates a configuration error.
func Configuration(msg string) *Error {
	return &Error{Code: CodeConfiguration, Message: msg}
}

// Upstream wraps a failed call to an external service.
func Upstream(err error, msg string) *Error {
	return &Error{Code: CodeUpstream, Message: msg, cause: err}
}

// MalformedResponse wraps an upstream response that could not be decoded.
func MalformedResponse(err error, msg string) *Error {
	return &Error{Code: CodeMalformedResponse, Message: msg, cause: err}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}
