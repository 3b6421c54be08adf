package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

// Pinger reports whether the record-store database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service and derives the serving status from database
// reachability.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status starts as NOT_SERVING until
// the first successful probe.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Probe pings the database once and publishes the resulting status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	return status
}

// Watch probes every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		probeCtx, cancel := context.WithTimeout(ctx, interval)
		h.Probe(probeCtx)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown marks every service NOT_SERVING so clients stop routing here.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
