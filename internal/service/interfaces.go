package service

import (
	"context"

	"github.com/MKhiriev/go-env-server/models"
)

// ConfigService resolves the served configuration into a ready-to-write payload.
type ConfigService interface {
	// Resolve reads the source file, applies environment overrides, checks
	// that every declared key has a value and renders the result.
	Resolve(ctx context.Context) (models.Payload, error)
}
