// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey signs push bodies with HashSHA256 when non-empty.
	HashKey string
	// Version is shown on the build info screen.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the default sync server offered to the user.
	ServerURL string
	// RequestTimeout is the timeout of every outbound sync request.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DBPath is the SQLite file of the local document store.
	DBPath string
}

// ClientWorkers contains client background sync settings.
type ClientWorkers struct {
	DebounceDelay  time.Duration
	SyncInterval   time.Duration
	StatusInterval time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	// Path is the rotated log file. Empty places it next to the binary.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig] and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DBPath: cfg.Client.DBPath,
		},
		Workers: ClientWorkers{
			DebounceDelay:  cfg.Workers.DebounceDelay,
			SyncInterval:   cfg.Workers.SyncInterval,
			StatusInterval: cfg.Workers.StatusInterval,
		},
		Log: ClientLog{
			Path: cfg.Client.LogPath,
		},
	}

	if clientCfg.Adapter.ServerURL == "" {
		clientCfg.Adapter.ServerURL = DefaultAdapterServerURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
	if clientCfg.Storage.DBPath == "" {
		clientCfg.Storage.DBPath = DefaultClientDBPath
	}
	if clientCfg.Workers.DebounceDelay == 0 {
		clientCfg.Workers.DebounceDelay = DefaultDebounceDelay
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Workers.StatusInterval == 0 {
		clientCfg.Workers.StatusInterval = DefaultStatusInterval
	}

	return clientCfg
}
