package chat

import (
	"errors"
	"net/http"
)

var (
	ErrDisabled     = errors.New("chat is not enabled for this region")
	ErrNoVisitor    = errors.New("visitor id missing")
	ErrStepNotFound = errors.New("gospel step not found")
	ErrUpstream     = errors.New("chat provider unavailable")
	ErrValidation   = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrNoVisitor), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStepNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
