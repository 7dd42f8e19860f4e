// Package cache provides the Redis client shared by the post list cache and
// the rate limiter, and a byte-level [Cache] over it.
package cache

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewRedisClient builds a Redis client from cfg and pings it once.
//
// An unreachable server is logged but not fatal: go-redis reconnects on
// demand and every caller treats cache errors as a bypass.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).
			Msg("redis is unreachable, cache and rate limiting run degraded")
		return client
	}

	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis successfully")
	return client
}
