// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements fixed-window request limiting backed by
// Redis counters.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Policy allows at most Limit requests per Window for one route.
// Name identifies the route in counter keys and logs.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one [Limiter.Allow] call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAfter is the time left until the current window ends.
	ResetAfter time.Duration
}

//go:generate mockgen -source=ratelimit.go -destination=../mock/ratelimit_mock.go -package=mock

// Limiter counts a request against policy for client and reports whether it
// may proceed.
type Limiter interface {
	Allow(ctx context.Context, policy Policy, client string) (Decision, error)
}

type redisLimiter struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// Option configures a Redis limiter.
type Option func(*redisLimiter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *redisLimiter) {
		l.now = now
	}
}

// NewRedisLimiter returns a fixed-window [Limiter].
//
// Windows are aligned to multiples of the policy window since the Unix
// epoch, so every client's counter resets at the same boundary. Each hit
// sets the counter's TTL to the time left in its window, so a key never
// outlives the window it counts.
func NewRedisLimiter(client redis.UniversalClient, prefix string, opts ...Option) Limiter {
	l := &redisLimiter{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow increments the counter for the current window. The request is
// allowed while the counter stays within policy.Limit.
func (l *redisLimiter) Allow(ctx context.Context, policy Policy, client string) (Decision, error) {
	if policy.Limit < 1 || policy.Window <= 0 {
		return Decision{}, fmt.Errorf("invalid rate limit policy %q: %d/%s", policy.Name, policy.Limit, policy.Window)
	}

	now := l.now()
	window := now.UnixNano() / int64(policy.Window)
	windowEnd := time.Unix(0, (window+1)*int64(policy.Window))
	key := l.prefix + policy.Name + ":" + client + ":" + strconv.FormatInt(window, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.PExpire(ctx, key, windowEnd.Sub(now))
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("error counting request for %q: %w", policy.Name, err)
	}

	count := int(incr.Val())
	return Decision{
		Allowed:    count <= policy.Limit,
		Limit:      policy.Limit,
		Remaining:  max(policy.Limit-count, 0),
		ResetAfter: windowEnd.Sub(now),
	}, nil
}
