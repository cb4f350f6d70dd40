package service

import (
	"github.com/MKhiriev/go-env-server/internal/config"
	"github.com/MKhiriev/go-env-server/internal/logger"
	"github.com/MKhiriev/go-env-server/internal/store"
)

type Services struct {
	ConfigService ConfigService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		ConfigService: NewConfigService(storages.Files, storages.Env, cfg.Source.File, cfg.RenderOptions(), logger),
	}
}
