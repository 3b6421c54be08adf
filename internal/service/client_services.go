package service

import (
	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SyncService    ContactsSyncService
	ContactService ContactService
	ShareService   ShareService
	SyncJob        ClientSyncJob
}

func NewClientServices(container adapter.Container, logger *logger.Logger) *ClientServices {
	enumerator := NewZoneChangesEnumerator(logger)
	fetcher := NewScopeFetcher(container, enumerator, logger)
	syncSvc := NewContactsSyncService(fetcher, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(container, logger),
		SyncService:    syncSvc,
		ContactService: NewContactService(container, logger),
		ShareService:   NewShareService(container, logger),
		SyncJob:        NewClientSyncJob(syncSvc, logger),
	}
}
