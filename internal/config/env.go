// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the server's own settings so they never collide with
// the keys of the served configuration.
const EnvPrefix = "ENV_SERVER_"

// parseEnv populates cfg from ENV_SERVER_* environment variables using the
// caarlos0/env library. Fields are mapped via their `env` tags on
// [StructuredConfig] and its nested types; untagged fields are left alone.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
