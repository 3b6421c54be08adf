package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client principal and container settings.
type ClientApp struct {
	// ContainerID is the container the client synchronizes with.
	ContainerID string
	// Login and Password authenticate the principal.
	Login    string
	Password string
	// Register creates the principal before the first login.
	Register bool
}

// ClientAdapter holds the client transport settings.
type ClientAdapter struct {
	// HTTPAddress is the base address of the record-store REST API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	// SyncInterval is how often the background refresh runs.
	SyncInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and narrows it to the
// client view, applying defaults and validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ContainerID: cfg.App.ContainerID,
			Login:       cfg.App.Login,
			Password:    cfg.App.Password,
			Register:    cfg.App.Register,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}
