// Package store persists the record store: principals, zones, records,
// shares and share participants.
//
// It runs on PostgreSQL (pgx) or SQLite (go-sqlite3) behind database/sql; the
// driver is selected from the DSN and queries are built with squirrel so the
// same repositories serve both dialects.
package store

import (
	"context"

	"github.com/MKhiriev/go-zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores principals.
type UserRepository interface {
	// CreateUser inserts the principal together with its default zone.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ZoneRepository stores zones and the participants of shared zones.
type ZoneRepository interface {
	// CreateZone is idempotent: saving an existing zone returns it unchanged.
	CreateZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error)
	FindZone(ctx context.Context, zoneID models.ZoneID) (models.Zone, error)
	ListOwnedZones(ctx context.Context, owner string) ([]models.Zone, error)
	ListParticipatingZones(ctx context.Context, login string) ([]models.Zone, error)
	IsParticipant(ctx context.Context, zoneID models.ZoneID, login string) (bool, error)
}

// RecordRepository stores records and serves zone changesets.
type RecordRepository interface {
	// SaveRecord creates or updates a record, enforcing change tags, and
	// advances the zone change sequence.
	SaveRecord(ctx context.Context, record models.Record) (models.Record, error)
	FindRecord(ctx context.Context, recordID models.RecordID) (models.Record, error)

	// ZoneChanges returns up to limit records changed after afterSeq, in
	// change order.
	ZoneChanges(ctx context.Context, zoneID models.ZoneID, afterSeq int64, limit int) (ChangesPage, error)
}

// ShareRepository stores zone-wide share records.
type ShareRepository interface {
	CreateShare(ctx context.Context, zoneID models.ZoneID, title string) (models.Record, error)

	// AddParticipant grants login access to the zone owning the share
	// record and returns that zone.
	AddParticipant(ctx context.Context, shareRecordID models.RecordID, login string) (models.Zone, error)
}

// ErrorClassificator tells callers how to react to a driver error.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// ChangesPage is one page of a zone changeset.
type ChangesPage struct {
	Results []models.RecordResult

	// LastSeq is the change sequence of the last returned record, or the
	// requested afterSeq when the page is empty.
	LastSeq    int64
	MoreComing bool
}
