// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-env-server/models"
)

// Built-in defaults applied when neither a flag nor an environment variable
// provides a value.
const (
	DefaultPort     = "8080"
	DefaultFile     = ".env"
	DefaultVariable = "CONFIG"
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration of the server. It is
// assembled from command-line flags, ENV_SERVER_* environment variables and
// built-in defaults, in that order of precedence.
//
// Struct tags:
//   - env: environment variable name (without the ENV_SERVER_ prefix)
//     read by caarlos0/env.
type StructuredConfig struct {
	// Server holds the HTTP listener settings.
	Server Server

	// Source holds the location of the served key/value file.
	Source Source

	// Render controls the shape of the served payload.
	Render Render

	// Log holds logger settings.
	Log Log
}

// Server holds network settings for the HTTP listener.
type Server struct {
	// Port is the TCP port to listen on.
	// Flag: -p / --port. Env: ENV_SERVER_PORT
	Port string `env:"PORT"`
}

// Source describes where the served configuration comes from.
type Source struct {
	// File is the path to the key/value source file.
	// Flag: -f / --file. Env: ENV_SERVER_FILE
	File string `env:"FILE"`
}

// Render holds the output options. They are flag-only: the environment is
// reserved for overriding served keys and cannot change the output shape.
type Render struct {
	// Variable is the identifier assigned in script mode.
	// Flag: -v / --variable
	Variable Option[string]

	// Window binds to window.<Variable> instead of declaring a const.
	// Flag: -w / --window
	Window Option[bool]

	// Compress disables pretty-printing.
	// Flag: -c / --compress
	Compress bool

	// JSON serves the raw JSON object.
	// Flag: -j / --json
	JSON bool
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Flag: -l / --log-level. Env: ENV_SERVER_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Option is a value that remembers whether it was passed explicitly on the
// command line, as opposed to holding its default.
type Option[T any] struct {
	Value T
	Set   bool
}

// Explicit returns an Option for a value the caller passed on purpose.
func Explicit[T any](v T) Option[T] {
	return Option[T]{Value: v, Set: true}
}

// Default returns an Option holding a value the caller did not pass.
func Default[T any](v T) Option[T] {
	return Option[T]{Value: v}
}

// HTTPAddress returns the listen address for [net/http.Server].
func (cfg *StructuredConfig) HTTPAddress() string {
	return ":" + cfg.Server.Port
}

// RenderOptions converts the render settings into [models.RenderOptions].
func (cfg *StructuredConfig) RenderOptions() models.RenderOptions {
	return models.RenderOptions{
		AsJSON:           cfg.Render.JSON,
		Compress:         cfg.Render.Compress,
		VariableName:     cfg.Render.Variable.Value,
		UseWindowBinding: cfg.Render.Window.Value,
	}
}

// GetStructuredConfig loads, merges and validates the configuration. fs must
// already be parsed and must have been set up with [RegisterFlags].
//
// Priority (first non-zero value wins):
//  1. Command-line flags that were passed explicitly
//  2. ENV_SERVER_* environment variables
//  3. Built-in defaults
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withDefaults().
		build()
}
