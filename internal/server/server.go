package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-env-server/internal/config"
	"github.com/MKhiriev/go-env-server/internal/handler"
	"github.com/MKhiriev/go-env-server/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress(), logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails on its own.
func (s *server) run(ctx context.Context) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.RunServer()
	}()

	select {
	case err := <-served:
		if err == nil {
			return errServerStopped
		}
		return fmt.Errorf("%w: %w", errServerStopped, err)
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-served; err != nil {
		return fmt.Errorf("%w: %w", errServerStopped, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
