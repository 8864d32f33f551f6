// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final [ClientConfig] satisfies all client
// invariants before it is used at startup. It is called after defaults are
// applied, so only explicitly wrong values fail here.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DataDir == "" || cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.GRPCAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.MediaBaseURL != "" {
		u, err := url.Parse(cfg.Adapter.MediaBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.PoolSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
