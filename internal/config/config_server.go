package config

import (
	"fmt"
	"time"
)

// ServerApp holds the server security and protocol settings.
type ServerApp struct {
	ContainerID      string
	TokenSignKey     string
	TokenIssuer      string
	TokenDuration    time.Duration
	HashKey          string
	PasswordHashCost int
	ChangesPageSize  int
}

// ServerConfig is the server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Server  Server
}

// GetServerConfig loads the merged configuration and narrows it to the
// server view, applying defaults and validation.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			ContainerID:      cfg.App.ContainerID,
			TokenSignKey:     cfg.App.TokenSignKey,
			TokenIssuer:      cfg.App.TokenIssuer,
			TokenDuration:    cfg.App.TokenDuration,
			HashKey:          cfg.App.HashKey,
			PasswordHashCost: cfg.App.PasswordHashCost,
			ChangesPageSize:  cfg.App.ChangesPageSize,
		},
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}
