// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_*, SERVER_*, STORAGE_*, POSTS_*,
// RATE_LIMIT_* and WORKERS_* variables. Unset variables leave fields at
// their zero value; defaults are applied after all sources are merged.
// Rate fields are decoded by [Rate.UnmarshalText].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
