package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type contactService struct {
	container adapter.Container
	logger    *logger.Logger
}

func NewContactService(container adapter.Container, logger *logger.Logger) ContactService {
	return &contactService{container: container, logger: logger}
}

// AddContact implements [ContactService]. The zone save is idempotent on the
// store side, so adding to an existing group reuses its zone. A failed record
// save leaves the zone in place.
func (s *contactService) AddContact(ctx context.Context, name, phoneNumber, group string) (models.Contact, error) {
	name = strings.TrimSpace(name)
	group = strings.TrimSpace(group)
	if name == "" || group == "" {
		return models.Contact{}, ErrInvalidContact
	}
	if group == models.DefaultZoneName {
		return models.Contact{}, fmt.Errorf("%w: group name %q is reserved", ErrInvalidContact, group)
	}

	db := s.container.Database(models.ScopePrivate)

	zone, err := db.SaveZone(ctx, models.NewZone(group))
	if err != nil {
		return models.Contact{}, fmt.Errorf("save zone %q: %w", group, err)
	}

	record, err := db.SaveRecord(ctx, models.NewContactRecord(zone.ID, name, strings.TrimSpace(phoneNumber)))
	if err != nil {
		return models.Contact{}, fmt.Errorf("save contact into zone %s: %w", zone.ID, err)
	}

	contact, ok := models.ContactFromRecord(record)
	if !ok {
		return models.Contact{}, fmt.Errorf("saved record %s is not a contact", record.ID.RecordName)
	}

	s.logger.Info().Str("zone", zone.ID.String()).Str("record", record.ID.RecordName).Msg("contact added")
	return contact, nil
}
