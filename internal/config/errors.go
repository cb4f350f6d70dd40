package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrIncompatibleOptions is returned when --json is combined with an
	// explicitly passed --window or --variable.
	ErrIncompatibleOptions = errors.New("cannot use --json with --window or --variable")
	// ErrInvalidPort is returned when the listen port is not a number in
	// the 0-65535 range.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidLogLevel is returned when the log level is not a known
	// zerolog level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
