// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService counts Refresh calls.
type spySyncService struct {
	calls atomic.Int64
	err   error
}

func (s *spySyncService) Refresh(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *spySyncService) FetchPrivateAndShared(context.Context) ([]models.RecordGroup, []models.RecordGroup, error) {
	return nil, nil, nil
}

func (s *spySyncService) State() models.SyncState { return models.LoadingState() }

func (s *spySyncService) Subscribe() (<-chan models.SyncState, func()) {
	return make(chan models.SyncState), func() {}
}

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, logger.Nop())
	require.NotNil(t, job)
}

func TestClientSyncJob_Start_CallsRefresh(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_KeepsRunningAfterErrors(t *testing.T) {
	spy := &spySyncService{err: errors.New("offline")}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no refresh after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
