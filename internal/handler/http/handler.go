package http

import (
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// Route names used as rate-limit policy keys.
const (
	routeRegister   = "register"
	routeLogin      = "login"
	routeCreatePost = "create-post"
	routeDeletePost = "delete-post"
)

type Handler struct {
	services *service.Services

	// limiter may be nil, which disables rate limiting.
	limiter  ratelimit.Limiter
	policies map[string]ratelimit.Policy

	slowRequestThreshold time.Duration
	requestIDs           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:             services,
		limiter:              limiter,
		policies:             policiesFromConfig(cfg.RateLimit),
		slowRequestThreshold: cfg.Server.SlowRequestThreshold,
		requestIDs:           utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

func policiesFromConfig(cfg config.RateLimit) map[string]ratelimit.Policy {
	policies := make(map[string]ratelimit.Policy, 4)
	for name, rate := range map[string]config.Rate{
		routeRegister:   cfg.Register,
		routeLogin:      cfg.Login,
		routeCreatePost: cfg.CreatePost,
		routeDeletePost: cfg.DeletePost,
	} {
		if rate.IsZero() {
			continue
		}
		policies[name] = ratelimit.Policy{Name: name, Limit: rate.Requests, Window: rate.Window}
	}
	return policies
}
