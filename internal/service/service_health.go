package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/cache"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// Health states reported by HealthService.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	serviceUp   = "up"
	serviceDown = "down"
)

const healthPingTimeout = 2 * time.Second

// DBPinger is satisfied by *sql.DB and *store.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db      DBPinger
	cache   cache.Cache
	version string
	last    atomic.Pointer[models.HealthResponse]
	logger  *logger.Logger
}

func NewHealthService(db DBPinger, c cache.Cache, version string, logger *logger.Logger) HealthService {
	return &healthService{
		db:      db,
		cache:   c,
		version: version,
		logger:  logger,
	}
}

// Probe reports unhealthy without the database and degraded without the
// cache, since list reads fall back to the database.
func (h *healthService) Probe(ctx context.Context) models.HealthResponse {
	dbState := h.ping(ctx, "database", h.db.PingContext)
	cacheState := h.ping(ctx, "cache", h.cache.Ping)

	status := StatusHealthy
	switch {
	case dbState == serviceDown:
		status = StatusUnhealthy
	case cacheState == serviceDown:
		status = StatusDegraded
	}

	report := models.HealthResponse{
		Status:  status,
		Version: h.version,
		Services: map[string]string{
			"database": dbState,
			"cache":    cacheState,
		},
	}
	h.last.Store(&report)

	return report
}

func (h *healthService) Status(ctx context.Context) models.HealthResponse {
	if last := h.last.Load(); last != nil {
		return *last
	}
	return h.Probe(ctx)
}

func (h *healthService) ping(ctx context.Context, name string, ping func(context.Context) error) string {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("service", name).Msg("health probe failed")
		return serviceDown
	}
	return serviceUp
}
