package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure categories surfaced by the synchronous chain. Every hop wraps with
// %w, so errors.Is keeps working at the entry point.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTimeout         = errors.New("timeout")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal error")
)

// HTTPStatus maps a failure category to the transport status a handler
// responds with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusRequestTimeout
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromStatusCode restores the category a downstream service encoded into its
// response status. Callers re-surface the result unmodified, which is how a
// failure crosses several hops without being conflated with another class.
func FromStatusCode(code int, message string) error {
	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, message)
	case http.StatusRequestTimeout:
		return fmt.Errorf("%w: %s", ErrTimeout, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return fmt.Errorf("%w: %s", ErrInternal, message)
	}
}
