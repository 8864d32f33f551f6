package config

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	defaultDataDir        = ".go-test-prep"
	defaultDBFileName     = "client.db"
	defaultGRPCAddress    = "localhost:9090"
	defaultRequestTimeout = 10 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultPoolSize       = 4
)

// ClientApp holds client-side application settings derived from the
// structured config.
type ClientApp struct {
	// DeviceSecret unlocks the local keyring. Empty disables the secure store.
	DeviceSecret string
	// Version is reported in build info and sent as request metadata.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// GRPCAddress is the backend gRPC endpoint.
	GRPCAddress string
	// MediaBaseURL is the base URL for avatar downloads.
	MediaBaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DataDir holds the database, keyring and avatar files.
	DataDir string
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often client sync workers should run.
	SyncInterval time.Duration
	// PoolSize bounds the background I/O pool.
	PoolSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields relevant
// to the client runtime, fills in defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceSecret: cfg.App.DeviceSecret,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			MediaBaseURL:   cfg.Adapter.MediaBaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DataDir: cfg.Storage.DataDir,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			PoolSize:     cfg.Workers.PoolSize,
		},
	}
}

// applyDefaults fills every unset field with its default. The DSN default
// depends on DataDir, so DataDir is resolved first.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.DataDir, defaultDBFileName)
	}
	if cfg.Adapter.GRPCAddress == "" {
		cfg.Adapter.GRPCAddress = defaultGRPCAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = defaultPoolSize
	}
}
