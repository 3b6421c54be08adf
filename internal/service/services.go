package service

import (
	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type Services struct {
	AuthService        AuthService
	RecordStoreService RecordStoreService
	AppInfoService     AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	recordStore := NewRecordStoreValidationService().Wrap(
		NewRecordStoreService(repositories, cfg.App, logger),
	)

	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, cfg.App, logger),
		RecordStoreService: recordStore,
		AppInfoService:     NewAppInfoService(buildInfo, logger),
	}
}
