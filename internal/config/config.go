// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-blog-api service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// key-value cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Posts holds pagination settings for the post list endpoint.
	Posts Posts `envPrefix:"POSTS_"`

	// RateLimit holds per-route fixed-window policies.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis connection settings shared by the post list
	// cache and the rate limiter counters.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenAlgorithm is the HMAC signing algorithm: HS256, HS384 or HS512.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// TokenIssuer is the optional "iss" claim embedded in every issued
	// token. When set it is also required on verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds reading and writing a single request on the
	// HTTP server (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SlowRequestThreshold is the elapsed time above which the timing
	// stage logs a warning.
	// Env: SERVER_SLOW_REQUEST_THRESHOLD
	SlowRequestThreshold time.Duration `env:"SLOW_REQUEST_THRESHOLD"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" or
	// "postgresql://" DSN selects PostgreSQL, "sqlite://" or "file:" selects
	// SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds Redis connection settings.
type Cache struct {
	// Address is the Redis "host:port".
	// Env: STORAGE_CACHE_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis password.
	// Env: STORAGE_CACHE_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_CACHE_DB
	DB int `env:"DB"`

	// ListTTL is how long a cached post list page stays fresh.
	// Env: STORAGE_CACHE_LIST_TTL
	ListTTL time.Duration `env:"LIST_TTL"`
}

// Posts holds pagination settings.
type Posts struct {
	// MaxLimit is the upper bound silently applied to the "limit" query
	// parameter of the post list endpoint.
	// Env: POSTS_MAX_LIMIT
	MaxLimit int `env:"MAX_LIMIT"`
}

// RateLimit holds one fixed-window policy per limited route.
// Values are written as "<requests>/<window>", e.g. "3/1m" or "5/minute".
type RateLimit struct {
	Register   Rate `env:"REGISTER"`
	Login      Rate `env:"LOGIN"`
	CreatePost Rate `env:"CREATE_POST"`
	DeletePost Rate `env:"DELETE_POST"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval defines how often the health probe worker pings the
	// database and the cache.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields, mergo does not override):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
