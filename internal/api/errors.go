package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/moodreel/moodreel-server/internal/errors"
)

// APIError is a custom error type that implements huma.StatusError.
// Every failure renders as {"error": message}.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to render errors as {"error": message}.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return fromDomainError(domainErr)
			}
		}

		// Request decoding and schema failures are plain bad requests.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		return &APIError{
			status:  status,
			Message: requestErrorMessage(message, errs),
		}
	}
}

// toAPIError converts a service error for return from a handler.
// Unknown errors become a generic 500.
func toAPIError(err error) error {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return fromDomainError(domainErr)
	}
	return &APIError{
		status:  http.StatusInternalServerError,
		Message: "internal server error",
	}
}

func fromDomainError(err *domainerrors.Error) *APIError {
	return &APIError{
		status:  err.HTTPStatus(),
		Message: err.Message,
	}
}

// requestErrorMessage appends the first of huma's error details to message.
func requestErrorMessage(message string, errs []error) string {
	for _, err := range errs {
		if err == nil {
			continue
		}
		return message + ": " + err.Error()
	}
	return message
}
