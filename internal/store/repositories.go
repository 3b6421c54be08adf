package store

import (
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

// Repositories bundles every repository of the record store.
type Repositories struct {
	UserRepository   UserRepository
	ZoneRepository   ZoneRepository
	RecordRepository RecordRepository
	ShareRepository  ShareRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		ZoneRepository:   NewZoneRepository(db, logger),
		RecordRepository: NewRecordRepository(db, logger),
		ShareRepository:  NewShareRepository(db, logger),
	}
}
