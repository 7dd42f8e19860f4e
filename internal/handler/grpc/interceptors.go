package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDKey = "x-request-id"

// withRequestID attaches a child logger carrying request_id to the context
// and returns the id in the response header metadata.
func (h *Handler) withRequestID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	requestID := uuid.NewString()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, requestID))

	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := next(ctx, req)

	code := status.Code(err)
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("grpc request completed")

	return resp, err
}
