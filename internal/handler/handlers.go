package handler

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-server/internal/handler/http"
	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers resolves the configuration once and builds the transport
// handlers around the resulting payload. Any resolution failure is returned
// wrapped in errConfigNotResolved and leaves no handler behind.
func NewHandlers(ctx context.Context, services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.ConfigService == nil {
		return nil, errNoHandlersAreCreated
	}

	payload, err := services.ConfigService.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigNotResolved, err)
	}

	return &Handlers{
		HTTP: http.NewHandler(payload, logger),
	}, nil
}
