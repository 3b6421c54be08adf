package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
	"golang.org/x/sync/errgroup"
)

type contactsSyncService struct {
	fetcher ScopeFetcher
	state   *syncStateHolder
	logger  *logger.Logger
}

// NewContactsSyncService returns the sync orchestrator. Its state starts as
// Loading until the first refresh finishes.
func NewContactsSyncService(fetcher ScopeFetcher, logger *logger.Logger) ContactsSyncService {
	return &contactsSyncService{
		fetcher: fetcher,
		state:   newSyncStateHolder(),
		logger:  logger,
	}
}

// Refresh implements [ContactsSyncService].
func (s *contactsSyncService) Refresh(ctx context.Context) error {
	generation := s.state.begin()
	log := s.logger.With().Uint64("generation", generation).Logger()

	private, shared, err := s.FetchPrivateAndShared(ctx)

	next := models.LoadedState(private, shared)
	if err != nil {
		next = models.FailedState(err)
	}

	if !s.state.finish(generation, next) {
		log.Debug().Msg("refresh superseded by a newer one, result discarded")
		return err
	}

	if err != nil {
		log.Err(err).Msg("refresh failed")
		return err
	}

	log.Info().
		Int("private_groups", len(private)).
		Int("shared_groups", len(shared)).
		Msg("refresh finished")
	return nil
}

// FetchPrivateAndShared implements [ContactsSyncService].
func (s *contactsSyncService) FetchPrivateAndShared(ctx context.Context) ([]models.RecordGroup, []models.RecordGroup, error) {
	var private, shared []models.RecordGroup

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		groups, err := s.fetcher.FetchGroups(gCtx, models.ScopePrivate)
		if err != nil {
			return err
		}
		private = groups
		return nil
	})
	g.Go(func() error {
		groups, err := s.fetcher.FetchGroups(gCtx, models.ScopeShared)
		if err != nil {
			return err
		}
		shared = groups
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("fetch private and shared groups: %w", err)
	}

	return private, shared, nil
}

// State implements [ContactsSyncService].
func (s *contactsSyncService) State() models.SyncState {
	return s.state.snapshot()
}

// Subscribe implements [ContactsSyncService].
func (s *contactsSyncService) Subscribe() (<-chan models.SyncState, func()) {
	return s.state.subscribe()
}
