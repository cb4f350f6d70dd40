// Command env-server serves a .env-style key/value file over HTTP, either as
// raw JSON or as a JavaScript assignment, after applying overrides from the
// process environment.
//
//	env-server -f .env -v APP_CONFIG -w
//	env-server --json --compress --port 3000
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-env-server/internal/config"
	"github.com/MKhiriev/go-env-server/internal/handler"
	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/internal/server"
	"github.com/MKhiriev/go-env-server/internal/service"
	"github.com/MKhiriev/go-env-server/internal/store"
	"github.com/MKhiriev/go-env-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env-server",
		Short: "Serve a .env file as JSON or as a JavaScript assignment",
		Long: `Serve a .env file as JSON or as a JavaScript assignment.

The file is read once at startup. Every key found in it may be overridden by
an environment variable of the same name; a key declared without "=" must be
provided that way or the server refuses to start.

Example:
  env-server -f .env -v APP_CONFIG -w
  env-server --json --compress --port 3000`,
		Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd.Context(), cmd.Flags())
		},
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, fs *pflag.FlagSet) {
	log := logger.NewLogger("env-server")

	cfg, err := config.GetStructuredConfig(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := newHandlers(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

// newHandlers resolves the served configuration and builds the handlers
// around it.
func newHandlers(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*handler.Handlers, error) {
	storages := store.NewStorages()
	services := service.NewServices(storages, cfg, log)

	return handler.NewHandlers(ctx, services, log)
}
