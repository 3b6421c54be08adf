package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func check(t *testing.T, h *Handler) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(pingerFunc(func(context.Context) error { return nil }), logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h))
}

func TestHandler_ProbeFollowsDatabase(t *testing.T) {
	var pingErr error
	h := NewHandler(pingerFunc(func(context.Context) error { return pingErr }), logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h))

	pingErr = errors.New("connection refused")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h))
}

func TestHandler_ShutdownStopsServing(t *testing.T) {
	h := NewHandler(pingerFunc(func(context.Context) error { return nil }), logger.Nop())
	h.Probe(context.Background())

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h))
}

func TestHandler_WatchStopsWithContext(t *testing.T) {
	probes := 0
	h := NewHandler(pingerFunc(func(context.Context) error { probes++; return nil }), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Watch(ctx, 1<<30)

	assert.Equal(t, 1, probes)
}
