// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-test-prep client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the device secret that unlocks
	// the local keyring and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the local data directory and the sqlite DSN.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote endpoints used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs and the I/O pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DataDir is the directory holding the local database, the keyring
	// and the avatar image.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the local sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceSecret is the passphrase the keyring KEK is derived from.
	// When empty the secure store is unavailable and tokens are kept in
	// the plaintext namespace.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path or URI. Defaults to <DataDir>/client.db.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote endpoints the client talks to.
type Adapter struct {
	// GRPCAddress is the backend gRPC endpoint in "host:port" format.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MediaBaseURL is the base URL relative avatar links are resolved against.
	// Env: ADAPTER_MEDIA_URL
	MediaBaseURL string `env:"MEDIA_URL"`

	// RequestTimeout bounds every outbound call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the profile sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PoolSize bounds the number of concurrent fire-and-forget I/O tasks.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
