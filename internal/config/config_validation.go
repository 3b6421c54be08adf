// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultRequestTimeout   = 15 * time.Second
	defaultSyncInterval     = 5 * time.Minute
	defaultTokenDuration    = 24 * time.Hour
	defaultTokenIssuer      = "go-zone-keeper"
	defaultPasswordHashCost = 10
	defaultChangesPageSize  = 100
	maxChangesPageSize      = 1000
)

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.ContainerID == "" || cfg.App.Login == "" || cfg.App.Password == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.PasswordHashCost <= 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.ChangesPageSize <= 0 {
		cfg.App.ChangesPageSize = defaultChangesPageSize
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.ContainerID == "" || cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.ChangesPageSize > maxChangesPageSize {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
