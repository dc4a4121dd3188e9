package study

import (
	"errors"
	"net/http"
)

var (
	ErrNoVisitor  = errors.New("visitor id missing")
	ErrValidation = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNoVisitor):
		return http.StatusBadRequest
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
