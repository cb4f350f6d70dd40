package http

import (
	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/models"
)

// Handler serves a configuration payload that was rendered once at startup.
// The payload is never modified afterwards, so a Handler is safe for
// concurrent use.
type Handler struct {
	payload models.Payload

	logger *logger.Logger
}

func NewHandler(payload models.Payload, logger *logger.Logger) *Handler {
	logger.Info().
		Str("content_type", payload.ContentType).
		Int("size", len(payload.Body)).
		Msg("http handler created")

	return &Handler{
		payload: payload,
		logger:  logger,
	}
}
