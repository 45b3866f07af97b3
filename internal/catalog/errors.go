package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for TMDB API operations.
var (
	ErrNotFound         = errors.New("tmdb: not found")
	ErrUnauthorized     = errors.New("tmdb: invalid or missing API key")
	ErrRateLimited      = errors.New("tmdb: rate limited by server")
	ErrBadRequest       = errors.New("tmdb: bad request")
	ErrServer           = errors.New("tmdb: server error")
	ErrUnexpectedStatus = errors.New("tmdb: unexpected status")
	ErrInvalidMediaType = errors.New("tmdb: invalid media type")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op        string // "search", "details", "providers"
	MediaType MediaType
	ID        int // 0 for search
	Status    int // HTTP status, 0 when the call never got a response
	Err       error
}

func (e *Error) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("tmdb %s [%s/%d]: %v", e.Op, e.MediaType, e.ID, e.Err)
	}
	return fmt.Sprintf("tmdb %s [%s]: %v", e.Op, e.MediaType, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op string, mediaType MediaType, id, status int, err error) error {
	return &Error{
		Op:        op,
		MediaType: mediaType,
		ID:        id,
		Status:    status,
		Err:       err,
	}
}

// statusError maps a non-2xx status to a sentinel error.
func statusError(status int) error {
	switch {
	case status == 400:
		return ErrBadRequest
	case status == 401:
		return ErrUnauthorized
	case status == 404:
		return ErrNotFound
	case status == 429:
		return ErrRateLimited
	case status >= 500:
		return ErrServer
	default:
		return fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
	}
}
