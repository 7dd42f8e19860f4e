// Package config assembles the blog-server configuration.
//
// Sources are merged with mergo, earlier ones winning for non-zero fields:
// environment variables (caarlos0/env), command-line flags, the JSON file
// named by CONFIG or -c, and finally the built-in defaults (30m tokens,
// 60s list cache, page limit 100, rate limits 3/5/10/20 per minute).
// validate then requires a database DSN, a token signing key and at least
// one listen address.
//
// [GetStructuredConfig] is called once in main; the result is passed to
// constructors explicitly.
package config
