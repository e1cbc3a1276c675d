package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared across the service layers. Handlers map them to
// HTTP status codes with HTTPStatus; everything else is treated as a
// store/transport failure.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Unavailable wraps a transport-level failure from the document store so the
// original cause stays visible in logs while callers match on
// ErrStoreUnavailable.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// InvalidArgument returns a parameter validation failure carrying detail.
func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NotFound returns a missing-entity failure for the given collection and id.
func NotFound(collection, id string) error {
	return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
}

// HTTPStatus maps a service error to the response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
