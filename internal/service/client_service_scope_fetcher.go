package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
	"golang.org/x/sync/errgroup"
)

type scopeFetcher struct {
	container  adapter.Container
	enumerator ZoneChangesEnumerator
	logger     *logger.Logger
}

// NewScopeFetcher returns a [ScopeFetcher] that reads zones from container
// and drains each of them with enumerator.
func NewScopeFetcher(container adapter.Container, enumerator ZoneChangesEnumerator, logger *logger.Logger) ScopeFetcher {
	return &scopeFetcher{container: container, enumerator: enumerator, logger: logger}
}

// FetchGroups implements [ScopeFetcher].
func (f *scopeFetcher) FetchGroups(ctx context.Context, scope models.Scope) ([]models.RecordGroup, error) {
	db := f.container.Database(scope)

	allZones, err := db.AllZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s zones: %w", scope, err)
	}

	zones := make([]models.Zone, 0, len(allZones))
	for _, zone := range allZones {
		if zone.ID.IsDefault() {
			continue
		}
		zones = append(zones, zone)
	}
	if len(zones) == 0 {
		return nil, nil
	}

	results := make(chan models.RecordGroup, len(zones))
	g, gCtx := errgroup.WithContext(ctx)
	for _, zone := range zones {
		g.Go(func() error {
			// every pass re-enumerates from the beginning
			contacts, err := f.enumerator.ContactsInZone(gCtx, db, zone.ID, nil)
			if err != nil {
				return err
			}
			results <- models.NewRecordGroup(zone, contacts)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch %s groups: %w", scope, err)
	}
	close(results)

	groups := make([]models.RecordGroup, 0, len(zones))
	for group := range results {
		groups = append(groups, group)
	}

	f.logger.Debug().
		Str("scope", scope.String()).
		Int("zones", len(groups)).
		Msg("scope fetched")

	return groups, nil
}
