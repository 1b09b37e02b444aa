// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging values from a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as keys and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and request limiting settings for the
	// sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client's outbound HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the client sync scheduling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds local paths used by the planner client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Integrity checks are off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// OwnerKeySalt is mixed into the argon2id derivation that turns a
	// client secret key into the server-side owner key.
	// Env: APP_OWNER_KEY_SALT
	OwnerKeySalt string `env:"OWNER_KEY_SALT"`

	// MinSecretKeyLength is the shortest x-secret-key the server accepts.
	// Env: APP_MIN_SECRET_KEY_LENGTH
	MinSecretKeyLength int `env:"MIN_SECRET_KEY_LENGTH"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// listener is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is a ulule/limiter formatted rate such as "60-M".
	// Env: SERVER_RATE_LIMIT
	RateLimit string `env:"RATE_LIMIT"`

	// MaxBodyBytes caps the size of request bodies.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Storage groups the configuration for the server storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string. The server keeps datasets in
	// memory when it is empty.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the client's HTTP adapter.
type Adapter struct {
	// ServerURL is the sync server proposed by the settings screen when no
	// sync config has been saved yet.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound sync request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the timing of the client's background sync.
type Workers struct {
	// DebounceDelay is the quiet period after the last local write before a
	// sync runs.
	// Env: WORKERS_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// SyncInterval is the auto-sync period used when the stored sync config
	// does not carry one.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// StatusInterval is how often the settings screen refreshes the status.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`
}

// Client holds local paths of the planner client.
type Client struct {
	// DBPath is the SQLite file holding the local document store.
	// Env: CLIENT_DB_PATH
	DBPath string `env:"DB_PATH"`

	// LogPath is the rotated log file of the client.
	// Env: CLIENT_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[0], os.Args[1:]).
		withJSON().
		build()
}
