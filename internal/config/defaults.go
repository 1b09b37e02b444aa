// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by the server and client views for zero-valued fields.
const (
	DefaultHTTPAddress        = "0.0.0.0:3001"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultRateLimit          = "60-M"
	DefaultMaxBodyBytes int64 = 10 << 20
	DefaultOwnerKeySalt       = "onda-sync/owner-key"
	DefaultMinSecretKeyLength = 8

	DefaultAdapterServerURL      = "http://localhost:3001"
	DefaultAdapterRequestTimeout = 30 * time.Second
	DefaultDebounceDelay         = time.Second
	DefaultSyncInterval          = 5 * time.Minute
	DefaultStatusInterval        = 2 * time.Second
	DefaultClientDBPath          = "onda.db"

	defaultDotEnvPath = ".env"
)
