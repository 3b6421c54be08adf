// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the union of every setting the client and the server
// understand. It is populated from a JSON file, environment variables and
// command-line flags, and then narrowed into [ServerConfig] or [ClientConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings shared by both binaries.
type App struct {
	// ContainerID selects the record-store container. The client sends it
	// with every request and the server rejects requests for other containers.
	// Env: APP_CONTAINER_ID
	ContainerID string `env:"CONTAINER_ID"`

	// TokenSignKey signs and verifies bearer tokens (server).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens (server).
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (server).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key that signs change tokens (server).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// PasswordHashCost is the bcrypt cost of stored passwords (server).
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// ChangesPageSize caps the records returned per changeset (server).
	// Env: APP_CHANGES_PAGE_SIZE
	ChangesPageSize int `env:"CHANGES_PAGE_SIZE"`

	// Login and Password are the client principal credentials.
	// Env: APP_LOGIN, APP_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`

	// Register makes the client create the principal before logging in.
	// Env: APP_REGISTER
	Register bool `env:"REGISTER"`
}

// Storage groups persistence settings of the server.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the record-store database connection settings.
type DB struct {
	// DSN is either a postgres:// URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds listener addresses and timeouts of the record-store server.
type Server struct {
	// HTTPAddress is the REST listener in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listener in host:port form. Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the record-store endpoint.
type Adapter struct {
	// HTTPAddress is the base address of the record-store REST API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings of the client.
type Workers struct {
	// SyncInterval is the period of the background refresh.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from the JSON file,
// environment variables and the process command line. Priority, lowest to
// highest: JSON file, environment, flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
