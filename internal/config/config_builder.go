package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"golang.org/x/crypto/bcrypt"
)

// Default values applied by withDefaults for fields left empty by every
// other source.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultTokenAlgorithm       = "HS256"
	DefaultTokenDuration        = 30 * time.Minute
	DefaultRequestTimeout       = 30 * time.Second
	DefaultSlowRequestThreshold = time.Second
	DefaultCacheAddress         = "localhost:6379"
	DefaultListTTL              = 60 * time.Second
	DefaultMaxLimit             = 100
	DefaultHealthInterval       = 15 * time.Second
	DefaultVersion              = "1.0.0"
)

// defaultConfig holds the built-in values merged last.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenAlgorithm:   DefaultTokenAlgorithm,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          DefaultVersion,
			LogLevel:         "info",
		},
		Storage: Storage{
			Cache: Cache{
				Address: DefaultCacheAddress,
				ListTTL: DefaultListTTL,
			},
		},
		Server: Server{
			HTTPAddress:          DefaultHTTPAddress,
			RequestTimeout:       DefaultRequestTimeout,
			SlowRequestThreshold: DefaultSlowRequestThreshold,
		},
		Posts: Posts{
			MaxLimit: DefaultMaxLimit,
		},
		RateLimit: RateLimit{
			Register:   Rate{Requests: 3, Window: time.Minute},
			Login:      Rate{Requests: 5, Window: time.Minute},
			CreatePost: Rate{Requests: 10, Window: time.Minute},
			DeletePost: Rate{Requests: 20, Window: time.Minute},
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}
