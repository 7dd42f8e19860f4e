package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// rateLimit counts the request against the named route policy for the
// client address. A request over the limit gets 429 and never reaches
// next. When the limiter itself fails the request is let through.
func (h *Handler) rateLimit(route string) Middleware {
	return func(next http.Handler) http.Handler {
		policy, ok := h.policies[route]
		if !ok || h.limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			client := utils.ClientIP(r)

			decision, err := h.limiter.Allow(r.Context(), policy, client)
			if err != nil {
				log.Warn().Err(err).Str("route", route).Msg("rate limiter unavailable, request allowed")
				next.ServeHTTP(w, r)
				return
			}

			resetSeconds := strconv.Itoa(int(math.Ceil(decision.ResetAfter.Seconds())))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			w.Header().Set("X-RateLimit-Reset", resetSeconds)

			if !decision.Allowed {
				log.Warn().Str("route", route).Str("client", client).Msg("rate limit exceeded")
				w.Header().Set("Retry-After", resetSeconds)
				writeError(w, r, &rateLimitError{policy: policy})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
