package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a "host:port" flag value. The host may be empty (all
// interfaces), "localhost" or an IP literal; IPv6 hosts go in brackets.
type NetAddress struct {
	Host string
	Port int
}

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errAddressHost   = errors.New("host must be localhost or an IP address")
)

// ParseFlags reads the server flags from os.Args using flag.CommandLine.
// Unset flags stay at their zero value so that env and JSON values survive
// the merge.
//
//	-a                       HTTP address host:port
//	-grpc-address            gRPC health address host:port
//	-d                       database DSN
//	-cache-address           Redis host:port
//	-cache-ttl               post list cache TTL
//	-c, -config              JSON config file
//	-token-sign-key          JWT signing key
//	-token-algorithm         HS256, HS384 or HS512
//	-token-issuer            JWT issuer
//	-token-duration          access token lifetime
//	-request-timeout         HTTP read/write timeout
//	-slow-request-threshold  slow request warning threshold
//	-posts-max-limit         largest page size of GET /posts
//	-rate-register, -rate-login, -rate-create-post, -rate-delete-post
//	                         fixed-window policies such as 3/1m
//	-health-interval         health probe period
//	-log-level               minimum log level
func ParseFlags() (*StructuredConfig, error) {
	var (
		cfg                      StructuredConfig
		httpAddress, grpcAddress NetAddress
	)

	fs := flag.CommandLine
	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN (postgres://, sqlite:// or file:)")
	fs.StringVar(&cfg.Storage.Cache.Address, "cache-address", "", "Redis address host:port")
	fs.DurationVar(&cfg.Storage.Cache.ListTTL, "cache-ttl", 0, "post list cache TTL")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing key")
	fs.StringVar(&cfg.App.TokenAlgorithm, "token-algorithm", "", "token signing algorithm (HS256, HS384, HS512)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime (e.g. 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Server.SlowRequestThreshold, "slow-request-threshold", 0, "slow request warning threshold")
	fs.IntVar(&cfg.Posts.MaxLimit, "posts-max-limit", 0, "largest page size of GET /posts")
	fs.Var(&cfg.RateLimit.Register, "rate-register", "register rate, e.g. 3/1m")
	fs.Var(&cfg.RateLimit.Login, "rate-login", "login rate, e.g. 5/1m")
	fs.Var(&cfg.RateLimit.CreatePost, "rate-create-post", "create post rate, e.g. 10/1m")
	fs.Var(&cfg.RateLimit.DeletePost, "rate-delete-post", "delete post rate, e.g. 20/1m")
	fs.DurationVar(&cfg.Workers.HealthInterval, "health-interval", 0, "health probe period")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "minimum log level")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns "host:port", or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %v", errAddressFormat, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host = host
	a.Port = port
	return nil
}
