package event

import (
	"errors"
	"net/http"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrDuplicateSlug = errors.New("event slug already exists")
	ErrValidation    = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
