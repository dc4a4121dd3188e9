package church

import (
	"errors"
	"net/http"
)

var (
	ErrChurchNotFound = errors.New("church not found")
	ErrValidation     = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrChurchNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
