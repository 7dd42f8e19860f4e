package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// APIError is a non-2xx response. Envelope is zero when the body was not an
// error envelope.
type APIError struct {
	StatusCode int
	Envelope   models.ErrorResponse

	// RetryAfter is the Retry-After header of a 429, in seconds.
	RetryAfter int

	kind error
}

func (e *APIError) Error() string {
	if e.Envelope.Error == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	if e.Envelope.ErrorCode == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Envelope.Error)
	}
	return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Envelope.ErrorCode, e.Envelope.Error)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
