package contact

import (
	"errors"
	"net/http"
)

var (
	ErrMessageNotFound  = errors.New("contact message not found")
	ErrDecisionNotFound = errors.New("decision not found")
	ErrValidation       = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMessageNotFound), errors.Is(err, ErrDecisionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
