package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-zone-keeper/internal/adapter"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

const shareTitlePrefix = "Contact Group: "

type shareService struct {
	container adapter.Container
	logger    *logger.Logger

	mu sync.Mutex
	// created remembers share references this client created, keyed by zone,
	// for callers still holding a group snapshot taken before the share existed.
	created map[models.ZoneID]models.RecordID
}

func NewShareService(container adapter.Container, logger *logger.Logger) ShareService {
	return &shareService{
		container: container,
		logger:    logger,
		created:   make(map[models.ZoneID]models.RecordID),
	}
}

// ShareTitle returns the title a share of group is created with.
func ShareTitle(group models.RecordGroup) string {
	return shareTitlePrefix + group.Name()
}

// FetchOrCreateShare implements [ShareService].
func (s *shareService) FetchOrCreateShare(ctx context.Context, group models.RecordGroup) (models.Share, models.ShareMetadata, error) {
	zoneID := group.Zone.ID
	if zoneID.IsDefault() {
		return models.Share{}, models.ShareMetadata{}, ErrDefaultZoneNotShareable
	}

	// one coordinator call at a time keeps two concurrent requests for the
	// same zone from both reaching SaveShare
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.container.Database(models.ScopePrivate)

	shareID, ok := s.shareReference(group)
	if !ok {
		record, err := db.SaveShare(ctx, zoneID, ShareTitle(group))
		switch {
		case err == nil:
			share, ok := models.ShareFromRecord(record)
			if !ok {
				return models.Share{}, models.ShareMetadata{}, ErrInvalidRemoteShare
			}
			s.remember(zoneID, record.ID)
			s.logger.Info().Str("zone", zoneID.String()).Str("share", record.ID.RecordName).Msg("share created")
			return share, s.metadata(record.ID), nil

		case errors.Is(err, adapter.ErrConflict):
			// the zone got a share after our snapshot was taken
			zone, fetchErr := db.FetchZone(ctx, zoneID)
			if fetchErr != nil {
				return models.Share{}, models.ShareMetadata{}, fmt.Errorf("re-read zone %s after share conflict: %w", zoneID, fetchErr)
			}
			if zone.Share == nil {
				return models.Share{}, models.ShareMetadata{}, fmt.Errorf("zone %s reported a share conflict without a share: %w", zoneID, err)
			}
			shareID = *zone.Share
			s.remember(zoneID, shareID)

		default:
			return models.Share{}, models.ShareMetadata{}, fmt.Errorf("create share for zone %s: %w", zoneID, err)
		}
	}

	record, err := db.FetchRecord(ctx, shareID)
	if err != nil {
		return models.Share{}, models.ShareMetadata{}, fmt.Errorf("fetch share %s: %w", shareID.RecordName, err)
	}
	share, ok := models.ShareFromRecord(record)
	if !ok {
		return models.Share{}, models.ShareMetadata{}, ErrInvalidRemoteShare
	}

	return share, s.metadata(shareID), nil
}

// AcceptShare implements [ShareService].
func (s *shareService) AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error) {
	if metadata.ContainerID != s.container.ID() {
		return models.Zone{}, fmt.Errorf("%w: %q", ErrForeignContainer, metadata.ContainerID)
	}

	zone, err := s.container.AcceptShare(ctx, metadata)
	if err != nil {
		return models.Zone{}, fmt.Errorf("accept share %s: %w", metadata.ShareRecordID.RecordName, err)
	}

	s.logger.Info().Str("zone", zone.ID.String()).Msg("share accepted")
	return zone, nil
}

func (s *shareService) shareReference(group models.RecordGroup) (models.RecordID, bool) {
	if group.Zone.Share != nil {
		return *group.Zone.Share, true
	}
	id, ok := s.created[group.Zone.ID]
	return id, ok
}

func (s *shareService) remember(zoneID models.ZoneID, shareID models.RecordID) {
	s.created[zoneID] = shareID
}

func (s *shareService) metadata(shareID models.RecordID) models.ShareMetadata {
	return models.ShareMetadata{ContainerID: s.container.ID(), ShareRecordID: shareID}
}
