package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.AuthService.ParseToken] and loads the current user record
// via [service.AuthService.Identify]. On success the user and its ID are
// stored in the request context under [utils.UserCtxKey] and
// [utils.UserIDCtxKey].
//
// Every rejection is a 401 envelope carrying "WWW-Authenticate: Bearer";
// the chain stops there.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.Identify(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", user.ID).Msg("request authenticated")

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the user stored by the auth middleware.
func userFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(utils.UserCtxKey).(models.User)
	return user, ok
}
