// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/ulule/limiter/v3"
)

// validate checks source-independent invariants of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MinSecretKeyLength < 0 {
		return fmt.Errorf("%w: negative min secret key length", ErrInvalidAppConfigs)
	}

	if cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: negative max body bytes", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.MinSecretKeyLength < 1 {
		return fmt.Errorf("%w: min secret key length must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := limiter.NewRateFromFormatted(cfg.Server.RateLimit); err != nil {
		return fmt.Errorf("%w: rate limit %q: %v", ErrInvalidServerConfigs, cfg.Server.RateLimit, err)
	}

	if cfg.Storage.DSN != "" && !strings.HasPrefix(cfg.Storage.DSN, "postgres") {
		return fmt.Errorf("%w: only postgres DSNs are supported", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DBPath == "" || strings.Contains(cfg.Storage.DBPath, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DebounceDelay < 0 || cfg.Workers.SyncInterval < 0 || cfg.Workers.StatusInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
