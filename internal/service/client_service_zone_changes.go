package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type zoneChangesEnumerator struct {
	logger *logger.Logger
}

// NewZoneChangesEnumerator returns the changeset drainer used by the scope
// fetcher.
func NewZoneChangesEnumerator(logger *logger.Logger) ZoneChangesEnumerator {
	return &zoneChangesEnumerator{logger: logger}
}

// ContactsInZone implements [ZoneChangesEnumerator].
func (e *zoneChangesEnumerator) ContactsInZone(ctx context.Context, db adapter.Database, zoneID models.ZoneID, since models.ChangeToken) ([]models.Contact, error) {
	if zoneID.IsDefault() {
		return nil, nil
	}

	var (
		contacts []models.Contact
		token    = since
		batches  int
		dropped  int
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("enumerate zone %s: %w", zoneID, err)
		}

		changes, err := db.ZoneChanges(ctx, zoneID, token)
		if err != nil {
			return nil, fmt.Errorf("fetch changes of zone %s: %w", zoneID, err)
		}
		batches++

		for _, result := range changes.Modifications {
			if result.Failed() {
				dropped++
				continue
			}
			contact, ok := models.ContactFromRecord(*result.Record)
			if !ok {
				dropped++
				continue
			}
			contacts = append(contacts, contact)
		}

		if !changes.MoreComing {
			break
		}
		token = changes.ChangeToken
	}

	e.logger.Debug().
		Str("zone", zoneID.String()).
		Str("scope", db.Scope().String()).
		Int("batches", batches).
		Int("records", len(contacts)).
		Int("dropped", dropped).
		Msg("zone enumerated")

	return contacts, nil
}
