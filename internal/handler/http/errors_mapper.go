package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

// Error codes written to the "error_code" field of the envelope.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeNotAuthenticated   = "NOT_AUTHENTICATED"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUserDisabled       = "USER_DISABLED"
	codeInvalidToken       = "INVALID_TOKEN"
	codeDuplicate          = "DUPLICATE"
	codePostNotFound       = "POST_NOT_FOUND"
	codeNotFound           = "NOT_FOUND"
	codeIntegrity          = "INTEGRITY_ERROR"
	codeDatabase           = "DATABASE_ERROR"
	codeRateLimit          = "RATE_LIMIT_EXCEEDED"
	codeInternal           = "INTERNAL_ERROR"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message func(r *http.Request, err error) string
}

func fixed(message string) func(*http.Request, error) string {
	return func(*http.Request, error) string { return message }
}

// errorMappings is checked in order; the first target matched by errors.Is
// wins. Anything unmatched is an internal error.
var errorMappings = []errorMapping{
	{validators.ErrValidation, http.StatusUnprocessableEntity, codeValidation, fixed("Validation error")},
	{ErrInvalidJSON, http.StatusUnprocessableEntity, codeValidation, fixed("Validation error")},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity, codeValidation, fixed("Validation error")},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, codeNotAuthenticated, fixed("Not authenticated")},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, codeNotAuthenticated, fixed("Not authenticated")},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredentials, fixed("Invalid email or password")},
	{service.ErrUserIsDisabled, http.StatusUnauthorized, codeUserDisabled, fixed("User is disabled")},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, codeInvalidToken, fixed("Invalid token")},
	{service.ErrUserNotFound, http.StatusUnauthorized, codeInvalidToken, fixed("User not found")},

	{service.ErrDuplicateIdentity, http.StatusConflict, codeDuplicate, fixed("Email already registered")},
	{service.ErrConflict, http.StatusConflict, codeIntegrity, fixed("Database integrity error")},

	{service.ErrPostNotFound, http.StatusNotFound, codePostNotFound, func(r *http.Request, _ error) string {
		return fmt.Sprintf("Post with id %s not found", chi.URLParam(r, "id"))
	}},
	{ErrRouteNotFound, http.StatusNotFound, codeNotFound, fixed("Not Found")},

	{ErrRateLimitExceeded, http.StatusTooManyRequests, codeRateLimit, func(_ *http.Request, err error) string {
		var rlErr *rateLimitError
		if errors.As(err, &rlErr) {
			return rlErr.Error()
		}
		return "Rate limit exceeded"
	}},

	{service.ErrStorage, http.StatusInternalServerError, codeDatabase, fixed("Database error occurred")},
}

var internalError = errorMapping{
	status:  http.StatusInternalServerError,
	code:    codeInternal,
	message: fixed("Internal server error"),
}

func mappingFromError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError renders err as the uniform error envelope. Internal causes are
// logged, never written to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	m := mappingFromError(err)

	if m.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("path", r.URL.Path).Int("status", m.status).Msg("request rejected")
	}

	if m.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	response := models.ErrorResponse{
		Success:   false,
		Error:     m.message(r, err),
		ErrorCode: m.code,
		Details:   detailsFromError(err),
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
	}

	if _, wErr := utils.WriteJSON(w, response, m.status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func detailsFromError(err error) []models.ErrorDetail {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		details := make([]models.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, models.ErrorDetail{Loc: f.Loc, Msg: f.Msg, Type: f.Type})
		}
		return details
	}

	if errors.Is(err, ErrInvalidJSON) {
		return []models.ErrorDetail{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error.jsondecode"}}
	}

	return nil
}
