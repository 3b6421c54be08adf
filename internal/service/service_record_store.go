package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// recordStoreService enforces scope visibility on top of the repositories.
//
// The private scope addresses zones owned by the caller, the default zone
// included. The shared scope addresses zones owned by somebody else in which
// the caller is a participant; default zones are never visible there. A zone
// outside the caller's view is reported as ErrZoneNotFound whether or not it
// exists.
type recordStoreService struct {
	zones   store.ZoneRepository
	records store.RecordRepository
	shares  store.ShareRepository

	tokens      *changeTokenCodec
	containerID string
	pageSize    int

	logger *logger.Logger
}

func NewRecordStoreService(repositories *store.Repositories, cfg config.ServerApp, logger *logger.Logger) RecordStoreService {
	return &recordStoreService{
		zones:       repositories.ZoneRepository,
		records:     repositories.RecordRepository,
		shares:      repositories.ShareRepository,
		tokens:      newChangeTokenCodec(cfg.HashKey),
		containerID: cfg.ContainerID,
		pageSize:    cfg.ChangesPageSize,
		logger:      logger,
	}
}

func (s *recordStoreService) AllZones(ctx context.Context, scope models.Scope) ([]models.Zone, error) {
	login, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	switch scope {
	case models.ScopePrivate:
		zones, err := s.zones.ListOwnedZones(ctx, login)
		if err != nil {
			return nil, fmt.Errorf("error listing owned zones: %w", err)
		}
		return zones, nil
	case models.ScopeShared:
		zones, err := s.zones.ListParticipatingZones(ctx, login)
		if err != nil {
			return nil, fmt.Errorf("error listing shared zones: %w", err)
		}

		visible := zones[:0]
		for _, zone := range zones {
			if !zone.ID.IsDefault() && zone.ID.OwnerName != login {
				visible = append(visible, zone)
			}
		}
		return visible, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownScope, scope)
	}
}

func (s *recordStoreService) FetchZone(ctx context.Context, scope models.Scope, zoneID models.ZoneID) (models.Zone, error) {
	resolved, err := s.resolveZone(ctx, scope, zoneID)
	if err != nil {
		return models.Zone{}, err
	}

	zone, err := s.zones.FindZone(ctx, resolved)
	if err != nil {
		return models.Zone{}, notFoundAsZoneError(err)
	}

	return zone, nil
}

func (s *recordStoreService) SaveZone(ctx context.Context, scope models.Scope, zone models.Zone) (models.Zone, error) {
	if scope != models.ScopePrivate {
		return models.Zone{}, fmt.Errorf("%w: zones are created in the private scope", ErrInvalidScopeOperation)
	}

	resolved, err := s.resolveZone(ctx, scope, zone.ID)
	if err != nil {
		return models.Zone{}, err
	}

	saved, err := s.zones.CreateZone(ctx, resolved)
	if err != nil {
		return models.Zone{}, fmt.Errorf("error saving zone: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("zone", resolved.String()).Msg("zone saved")
	return saved, nil
}

func (s *recordStoreService) ZoneChanges(ctx context.Context, scope models.Scope, req models.ZoneChangesRequest) (models.ZoneChanges, error) {
	log := logger.FromContext(ctx)

	resolved, err := s.resolveZone(ctx, scope, req.ZoneID)
	if err != nil {
		return models.ZoneChanges{}, err
	}

	afterSeq, err := s.tokens.decode(resolved, req.Since)
	if err != nil {
		log.Warn().Err(err).Str("zone", resolved.String()).Msg("change token rejected")
		return models.ZoneChanges{}, err
	}

	page, err := s.records.ZoneChanges(ctx, resolved, afterSeq, s.pageSize)
	if err != nil {
		return models.ZoneChanges{}, fmt.Errorf("error reading zone changes: %w", err)
	}

	log.Debug().
		Str("zone", resolved.String()).
		Str("scope", scope.String()).
		Int64("after", afterSeq).
		Int("records", len(page.Results)).
		Bool("more_coming", page.MoreComing).
		Msg("zone changes served")

	return models.ZoneChanges{
		Modifications: page.Results,
		MoreComing:    page.MoreComing,
		ChangeToken:   s.tokens.encode(resolved, page.LastSeq),
	}, nil
}

func (s *recordStoreService) SaveRecord(ctx context.Context, scope models.Scope, record models.Record) (models.Record, error) {
	resolved, err := s.resolveZone(ctx, scope, record.ID.ZoneID)
	if err != nil {
		return models.Record{}, err
	}
	record.ID.ZoneID = resolved

	saved, err := s.records.SaveRecord(ctx, record)
	if err != nil {
		return models.Record{}, fmt.Errorf("error saving record: %w", notFoundAsZoneError(err))
	}

	return saved, nil
}

func (s *recordStoreService) FetchRecord(ctx context.Context, scope models.Scope, recordID models.RecordID) (models.Record, error) {
	resolved, err := s.resolveZone(ctx, scope, recordID.ZoneID)
	if err != nil {
		return models.Record{}, err
	}
	recordID.ZoneID = resolved

	record, err := s.records.FindRecord(ctx, recordID)
	if err != nil {
		return models.Record{}, fmt.Errorf("error fetching record: %w", err)
	}

	return record, nil
}

func (s *recordStoreService) SaveShare(ctx context.Context, scope models.Scope, req models.SaveShareRequest) (models.Record, error) {
	if scope != models.ScopePrivate {
		return models.Record{}, fmt.Errorf("%w: only owners share zones", ErrInvalidScopeOperation)
	}
	if req.ZoneID.IsDefault() {
		return models.Record{}, ErrDefaultZoneNotShareable
	}

	resolved, err := s.resolveZone(ctx, scope, req.ZoneID)
	if err != nil {
		return models.Record{}, err
	}

	share, err := s.shares.CreateShare(ctx, resolved, req.Title)
	if err != nil {
		return models.Record{}, fmt.Errorf("error creating share: %w", notFoundAsZoneError(err))
	}

	logger.FromContext(ctx).Info().
		Str("zone", resolved.String()).
		Str("share", share.ID.RecordName).
		Msg("zone shared")

	return share, nil
}

func (s *recordStoreService) AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error) {
	login, err := principal(ctx)
	if err != nil {
		return models.Zone{}, err
	}

	if metadata.ContainerID != s.containerID {
		return models.Zone{}, fmt.Errorf("%w: share belongs to %q", ErrContainerMismatch, metadata.ContainerID)
	}

	zoneID := metadata.ShareRecordID.ZoneID
	if zoneID.IsDefault() {
		return models.Zone{}, store.ErrShareNotFound
	}

	// owners already see the zone in their private scope
	if zoneID.OwnerName == login {
		zone, err := s.zones.FindZone(ctx, zoneID)
		if err != nil {
			return models.Zone{}, notFoundAsZoneError(err)
		}
		if zone.Share == nil || *zone.Share != metadata.ShareRecordID {
			return models.Zone{}, store.ErrShareNotFound
		}
		return zone, nil
	}

	zone, err := s.shares.AddParticipant(ctx, metadata.ShareRecordID, login)
	if err != nil {
		return models.Zone{}, fmt.Errorf("error accepting share: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("zone", zoneID.String()).
		Str("participant", login).
		Msg("share accepted")

	return zone, nil
}

// resolveZone fills in the owner of zoneID and checks the caller may address
// it in scope.
func (s *recordStoreService) resolveZone(ctx context.Context, scope models.Scope, zoneID models.ZoneID) (models.ZoneID, error) {
	login, err := principal(ctx)
	if err != nil {
		return models.ZoneID{}, err
	}

	switch scope {
	case models.ScopePrivate:
		if zoneID.OwnerName == "" {
			zoneID.OwnerName = login
		}
		if zoneID.OwnerName != login {
			return models.ZoneID{}, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
		}
		return zoneID, nil

	case models.ScopeShared:
		if zoneID.OwnerName == "" || zoneID.OwnerName == login || zoneID.IsDefault() {
			return models.ZoneID{}, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
		}

		ok, err := s.zones.IsParticipant(ctx, zoneID, login)
		if err != nil {
			return models.ZoneID{}, fmt.Errorf("error checking zone participation: %w", err)
		}
		if !ok {
			return models.ZoneID{}, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
		}
		return zoneID, nil

	default:
		return models.ZoneID{}, fmt.Errorf("%w: %q", models.ErrUnknownScope, scope)
	}
}

func principal(ctx context.Context) (string, error) {
	login, ok := utils.GetLoginFromContext(ctx)
	if !ok {
		return "", ErrNoPrincipal
	}
	return login, nil
}

func notFoundAsZoneError(err error) error {
	if errors.Is(err, store.ErrZoneNotFound) {
		return fmt.Errorf("%w: %w", ErrZoneNotFound, err)
	}
	return err
}
