// Package handler builds the transport handlers of the blog API from the
// service layer: the chi router behind the HTTP server and the gRPC health
// service.
package handler

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/handler/grpc"
	"github.com/MKhiriev/go-blog-api/internal/handler/http"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// matching address is not configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler when SERVER_ADDRESS is set and the
// gRPC handler when SERVER_GRPC_ADDRESS is set. limiter is only used by
// HTTP routes and may be nil.
func NewHandlers(services *service.Services, limiter ratelimit.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
