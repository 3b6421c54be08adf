package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
)

func serverConfig(httpAddress, grpcAddress string) *config.ServerConfig {
	return &config.ServerConfig{
		App:    config.ServerApp{ContainerID: "iCloud.test"},
		Server: config.Server{HTTPAddress: httpAddress, GRPCAddress: grpcAddress},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.ServerConfig
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", cfg: serverConfig(":8080", ":9090"), wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: serverConfig(":8080", ""), wantHTTP: true},
		{name: "grpc only", cfg: serverConfig("", ":9090"), wantGRPC: true},
		{name: "nothing configured", cfg: serverConfig("", ""), wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, nil, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
