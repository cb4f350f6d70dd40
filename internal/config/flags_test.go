package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedFlagSet registers all flags on a fresh FlagSet and parses args.
func parsedFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestRegisterFlags_DefinesAllFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{FlagPort, "p", "8080"},
		{FlagFile, "f", ".env"},
		{FlagVariable, "v", "CONFIG"},
		{FlagWindow, "w", "false"},
		{FlagCompress, "c", "false"},
		{FlagJSON, "j", "false"},
		{FlagLogLevel, "l", "info"},
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fs.Lookup(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.shorthand, f.Shorthand)
			assert.Equal(t, tt.defValue, f.DefValue)
			assert.NotEmpty(t, f.Usage)
		})
	}
}

func TestParseFlags_NoArgs_LeavesEverythingZero(t *testing.T) {
	cfg, err := ParseFlags(parsedFlagSet(t))

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_LongAndShortForms(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "long forms",
			args: []string{"--port", "3000", "--file", ".env.test", "--variable", "APP", "--window", "--compress", "--log-level", "debug"},
			want: &StructuredConfig{
				Server: Server{Port: "3000"},
				Source: Source{File: ".env.test"},
				Render: Render{
					Variable: Explicit("APP"),
					Window:   Explicit(true),
					Compress: true,
				},
				Log: Log{Level: "debug"},
			},
		},
		{
			name: "short forms",
			args: []string{"-p", "3000", "-f", ".env.test", "-v", "APP", "-w", "-c", "-l", "debug"},
			want: &StructuredConfig{
				Server: Server{Port: "3000"},
				Source: Source{File: ".env.test"},
				Render: Render{
					Variable: Explicit("APP"),
					Window:   Explicit(true),
					Compress: true,
				},
				Log: Log{Level: "debug"},
			},
		},
		{
			name: "grouped short booleans",
			args: []string{"-jc"},
			want: &StructuredConfig{
				Render: Render{JSON: true, Compress: true},
			},
		},
		{
			name: "equals syntax",
			args: []string{"--port=9000", "-f=conf.env"},
			want: &StructuredConfig{
				Server: Server{Port: "9000"},
				Source: Source{File: "conf.env"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(parsedFlagSet(t, tt.args...))

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// A flag passed with its default value must still be reported as explicit.
func TestParseFlags_ExplicitDefaultValues(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantWindow Option[bool]
		wantVar    Option[string]
	}{
		{
			name:    "variable equal to default",
			args:    []string{"-v", "CONFIG"},
			wantVar: Explicit("CONFIG"),
		},
		{
			name:       "window explicitly false",
			args:       []string{"--window=false"},
			wantWindow: Explicit(false),
		},
		{
			name: "nothing passed",
			args: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(parsedFlagSet(t, tt.args...))

			require.NoError(t, err)
			assert.Equal(t, tt.wantWindow, cfg.Render.Window)
			assert.Equal(t, tt.wantVar, cfg.Render.Variable)
		})
	}
}

func TestParseFlags_InvalidBoolean(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"--window=maybe"})

	require.Error(t, err)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(FlagPort, 0, "port as a different type")
	require.NoError(t, fs.Parse([]string{"--port", "80"}))

	cfg, err := ParseFlags(fs)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--port")
}
