package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by [Cache.Get] when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// Cache is a key-value store with per-entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache returns a [Cache] storing every key under prefix.
func NewRedisCache(client redis.UniversalClient, prefix string) Cache {
	return &redisCache{
		client: client,
		prefix: prefix,
	}
}

func (c *redisCache) key(k string) string {
	return c.prefix + k
}

// Get returns the stored value or [ErrCacheMiss].
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("error reading cache key %q: %w", key, err)
	}

	return value, nil
}

// Set stores value for ttl. A non-positive ttl is rejected so entries can
// never outlive their freshness window.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}

	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("error writing cache key %q: %w", key, err)
	}

	return nil
}

// Ping reports whether Redis answers.
func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
