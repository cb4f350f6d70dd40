package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagPort     = "port"
	FlagFile     = "file"
	FlagVariable = "variable"
	FlagWindow   = "window"
	FlagCompress = "compress"
	FlagJSON     = "json"
	FlagLogLevel = "log-level"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-p, --port       HTTP listen port
//	-f, --file       path to the key/value source file
//	-v, --variable   identifier used in script mode
//	-w, --window     bind to window.<variable> instead of const <variable>
//	-c, --compress   omit pretty-printing indentation
//	-j, --json       serve raw JSON instead of a script
//	-l, --log-level  log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagPort, "p", DefaultPort, "HTTP listen port")
	fs.StringP(FlagFile, "f", DefaultFile, "path to the config source file")
	fs.StringP(FlagVariable, "v", DefaultVariable, "identifier name used in script output")
	fs.BoolP(FlagWindow, "w", false, "bind to window.<variable> instead of const <variable>")
	fs.BoolP(FlagCompress, "c", false, "omit pretty-printing indentation")
	fs.BoolP(FlagJSON, "j", false, "serve raw JSON instead of a script (cannot be combined with --window or --variable)")
	fs.StringP(FlagLogLevel, "l", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
}

// ParseFlags reads the flags of an already parsed fs into a
// [StructuredConfig]. Only flags that were passed on the command line are
// copied; the rest stay zero so that lower-priority layers can fill them.
// Passing a flag with a value equal to its default still counts as passing it.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	if fs.Changed(FlagPort) {
		if cfg.Server.Port, err = fs.GetString(FlagPort); err != nil {
			return nil, flagError(FlagPort, err)
		}
	}
	if fs.Changed(FlagFile) {
		if cfg.Source.File, err = fs.GetString(FlagFile); err != nil {
			return nil, flagError(FlagFile, err)
		}
	}
	if fs.Changed(FlagVariable) {
		v, err := fs.GetString(FlagVariable)
		if err != nil {
			return nil, flagError(FlagVariable, err)
		}
		cfg.Render.Variable = Explicit(v)
	}
	if fs.Changed(FlagWindow) {
		v, err := fs.GetBool(FlagWindow)
		if err != nil {
			return nil, flagError(FlagWindow, err)
		}
		cfg.Render.Window = Explicit(v)
	}
	if fs.Changed(FlagCompress) {
		if cfg.Render.Compress, err = fs.GetBool(FlagCompress); err != nil {
			return nil, flagError(FlagCompress, err)
		}
	}
	if fs.Changed(FlagJSON) {
		if cfg.Render.JSON, err = fs.GetBool(FlagJSON); err != nil {
			return nil, flagError(FlagJSON, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, flagError(FlagLogLevel, err)
		}
	}

	return cfg, nil
}

func flagError(name string, err error) error {
	return fmt.Errorf("error reading --%s flag: %w", name, err)
}
