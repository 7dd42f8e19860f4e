// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

var (
	// ErrRateLimitExceeded is matched by every *rateLimitError.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is returned for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("not found")
)

type rateLimitError struct {
	policy ratelimit.Policy
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("Rate limit exceeded: %d per %s", e.policy.Limit, e.policy.Window)
}

func (e *rateLimitError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}
