package region

import (
	"errors"
	"net/http"
)

var (
	ErrRegionNotFound = errors.New("region not found")
	ErrCityNotFound   = errors.New("city not found")
	ErrDuplicateCode  = errors.New("region code already exists")
	ErrValidation     = errors.New("validation failed")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrRegionNotFound), errors.Is(err, ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateCode):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
