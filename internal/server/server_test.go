package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-zone-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BadGRPCAddress(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(okPinger{}, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	router := http.NewServeMux()

	srv := newHTTPServer(router, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())

	assert.Equal(t, ":0", srv.server.Addr)
	assert.Equal(t, time.Second, srv.server.ReadHeaderTimeout)
	assert.NotSame(t, router, srv.server.Handler)
}

func TestRun_ServesHealthUntilCancelled(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(okPinger{}, logger.Nop())}
	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	address := s.gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
