package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/internal/store"
	"github.com/MKhiriev/go-env-server/models"
)

type configService struct {
	files store.FileSource
	env   store.EnvSource

	path string
	opts models.RenderOptions

	logger *logger.Logger
}

// NewConfigService returns a [ConfigService] that reads path from files and
// overrides its values from env.
func NewConfigService(files store.FileSource, env store.EnvSource, path string, opts models.RenderOptions, logger *logger.Logger) ConfigService {
	return &configService{
		files:  files,
		env:    env,
		path:   path,
		opts:   opts,
		logger: logger,
	}
}

func (s *configService) Resolve(ctx context.Context) (models.Payload, error) {
	text, err := s.files.ReadFile(ctx, s.path)
	if err != nil {
		return models.Payload{}, fmt.Errorf("error loading config source: %w", err)
	}

	parsed := ParseLines(text)
	merged := MergeOverrides(parsed, s.env)

	final, err := CheckComplete(merged)
	if err != nil {
		return models.Payload{}, err
	}

	payload, err := Render(final, s.opts)
	if err != nil {
		return models.Payload{}, fmt.Errorf("error rendering config: %w", err)
	}

	// values are never logged
	s.logger.Debug().
		Str("file", s.path).
		Strs("keys", final.Keys()).
		Str("content_type", payload.ContentType).
		Int("size", len(payload.Body)).
		Msg("config resolved")

	return payload, nil
}
