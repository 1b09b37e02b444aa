// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResultStatus is the outcome reported by sync operations. Callers show it in
// status indicators, so it is a plain string rather than an error.
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
	// StatusSkipped means another sync was already running. It is not a
	// failure.
	StatusSkipped ResultStatus = "skipped"
)

// OperationResult is the soft-failure result of config and merge operations.
type OperationResult struct {
	Status  ResultStatus `json:"status"`
	Message string       `json:"message"`
}

// OK reports whether the operation succeeded.
func (r OperationResult) OK() bool {
	return r.Status == StatusSuccess
}

// SyncResult is returned by a full sync run.
type SyncResult struct {
	Status    ResultStatus `json:"status"`
	Message   string       `json:"message"`
	Pulled    bool         `json:"pulled"`
	Pushed    bool         `json:"pushed"`
	Version   int64        `json:"version"`
	Timestamp *time.Time   `json:"timestamp,omitempty"`
}

// PullResult is the outcome of a single pull request.
type PullResult struct {
	Status      ResultStatus `json:"status"`
	HasNewData  bool         `json:"hasNewData"`
	Exists      bool         `json:"exists"`
	Data        *Dataset     `json:"data,omitempty"`
	Version     int64        `json:"version,omitempty"`
	HasConflict bool         `json:"hasConflict,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// PushResult is the outcome of a single push request. On success the caller
// must adopt both Version and LastSync.
type PushResult struct {
	Success  bool       `json:"success"`
	Version  int64      `json:"version,omitempty"`
	LastSync *time.Time `json:"lastSync,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// TestConnectionResult is the outcome of a connection test.
type TestConnectionResult struct {
	Status       ResultStatus `json:"status"`
	Message      string       `json:"message"`
	ServerStatus string       `json:"serverStatus,omitempty"`
}

// SyncStatus is a snapshot of the in-memory sync state for status displays.
type SyncStatus struct {
	Enabled         bool       `json:"enabled"`
	Syncing         bool       `json:"syncing"`
	Version         int64      `json:"version"`
	LastSync        *time.Time `json:"lastSync"`
	AutoSyncActive  bool       `json:"autoSyncActive"`
	HasLocalChanges bool       `json:"hasLocalChanges"`
}
