// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// DefaultSyncInterval is the auto-sync period used when the stored config
	// does not carry one (5 minutes).
	DefaultSyncInterval = 300000

	// DefaultDebounceDelay is how long the client waits after the last local
	// write before it syncs (1 second).
	DefaultDebounceDelay = 1000 * time.Millisecond

	// MinSecretKeyLength is the shortest secret key the server accepts.
	MinSecretKeyLength = 8

	// GeneratedSecretKeyLength is the length of keys produced by the key
	// generator offered in the sync settings screen.
	GeneratedSecretKeyLength = 16

	// DefaultSyncServerURL is offered when nothing is configured yet.
	DefaultSyncServerURL = "http://localhost:3001"
)

// SyncConfig is the durable sync configuration. It is stored in the `sync`
// field of the global settings document.
type SyncConfig struct {
	// Enabled turns synchronization on for this device.
	Enabled bool `json:"enabled"`

	// ServerURL is the base URL of the remote sync server.
	ServerURL string `json:"serverUrl"`

	// SecretKey is the shared secret that identifies the dataset on the
	// server. Must be at least [MinSecretKeyLength] characters long.
	SecretKey string `json:"secretKey"`

	// Version is the last dataset version this client considers
	// authoritative. It never decreases.
	Version int64 `json:"version"`

	// LastSync is the instant of the last completed sync, nil if the client
	// never synced.
	LastSync *time.Time `json:"lastSync"`

	// AutoSync enables the periodic background sync.
	AutoSync bool `json:"autoSync"`

	// SyncInterval is the auto-sync period in milliseconds.
	SyncInterval int64 `json:"syncInterval"`
}

// Interval returns SyncInterval as a duration, falling back to
// [DefaultSyncInterval] for non-positive values.
func (c SyncConfig) Interval() time.Duration {
	if c.SyncInterval <= 0 {
		return DefaultSyncInterval * time.Millisecond
	}
	return time.Duration(c.SyncInterval) * time.Millisecond
}

// IsComplete reports whether the config carries both a server URL and a
// secret key.
func (c SyncConfig) IsComplete() bool {
	return c.ServerURL != "" && c.SecretKey != ""
}

// SyncConfigPatch is a partial update of [SyncConfig]. Nil fields are left
// untouched. Version and LastSync are deliberately absent: they are always
// stamped from the in-memory sync state.
type SyncConfigPatch struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	ServerURL    *string `json:"serverUrl,omitempty"`
	SecretKey    *string `json:"secretKey,omitempty"`
	AutoSync     *bool   `json:"autoSync,omitempty"`
	SyncInterval *int64  `json:"syncInterval,omitempty"`
}

// Apply merges the non-nil fields of p into cfg and returns the result.
func (p SyncConfigPatch) Apply(cfg SyncConfig) SyncConfig {
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.ServerURL != nil {
		cfg.ServerURL = *p.ServerURL
	}
	if p.SecretKey != nil {
		cfg.SecretKey = *p.SecretKey
	}
	if p.AutoSync != nil {
		cfg.AutoSync = *p.AutoSync
	}
	if p.SyncInterval != nil {
		cfg.SyncInterval = *p.SyncInterval
	}
	return cfg
}
