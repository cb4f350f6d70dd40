// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const maxPort = 65535

// validate checks the merged [StructuredConfig] before it is used at startup.
//
// The --json check looks at whether --window or --variable were passed, not
// at their values: "-j -v CONFIG" is rejected even though CONFIG is the
// default.
func (cfg *StructuredConfig) validate() error {
	if cfg.Render.JSON && (cfg.Render.Window.Set || cfg.Render.Variable.Set) {
		return ErrIncompatibleOptions
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 0 || port > maxPort {
		return fmt.Errorf("%w: %q", ErrInvalidPort, cfg.Server.Port)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	return nil
}
