// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds application-level server settings.
type ServerApp struct {
	// HashKey enables HashSHA256 request integrity checks when non-empty.
	HashKey string
	// OwnerKeySalt is the salt of the secret key to owner key derivation.
	OwnerKeySalt string
	// MinSecretKeyLength is the shortest accepted x-secret-key.
	MinSecretKeyLength int
	// Version is reported by the version endpoint.
	Version string
}

// ServerTransport holds listener and request limiting settings.
type ServerTransport struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	RateLimit      string
	MaxBodyBytes   int64
}

// ServerStorage holds the server database settings. An empty DSN selects
// the in-memory dataset repository.
type ServerStorage struct {
	DSN string
}

// ServerConfig is the sync server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerTransport
	Storage ServerStorage
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration, filling defaults for unset fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg onto a [ServerConfig] and applies defaults.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			HashKey:            cfg.App.HashKey,
			OwnerKeySalt:       cfg.App.OwnerKeySalt,
			MinSecretKeyLength: cfg.App.MinSecretKeyLength,
			Version:            cfg.App.Version,
		},
		Server: ServerTransport{
			HTTPAddress:    cfg.Server.HTTPAddress,
			GRPCAddress:    cfg.Server.GRPCAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		},
		Storage: ServerStorage{
			DSN: cfg.Storage.DB.DSN,
		},
	}

	if serverCfg.App.OwnerKeySalt == "" {
		serverCfg.App.OwnerKeySalt = DefaultOwnerKeySalt
	}
	if serverCfg.App.MinSecretKeyLength == 0 {
		serverCfg.App.MinSecretKeyLength = DefaultMinSecretKeyLength
	}
	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Server.RateLimit == "" {
		serverCfg.Server.RateLimit = DefaultRateLimit
	}
	if serverCfg.Server.MaxBodyBytes == 0 {
		serverCfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return serverCfg
}
