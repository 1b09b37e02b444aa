// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PullRequest is the body of POST /sync/pull.
type PullRequest struct {
	ClientVersion  int64      `json:"clientVersion"`
	ClientLastSync *time.Time `json:"clientLastSync"`
}

// PullResponse is returned by POST /sync/pull and GET /sync/data. When
// Exists is false the server holds no dataset for the key.
type PullResponse struct {
	Exists      bool       `json:"exists"`
	Version     int64      `json:"version,omitempty"`
	Data        *Dataset   `json:"data,omitempty"`
	LastSync    *time.Time `json:"lastSync,omitempty"`
	HasConflict bool       `json:"hasConflict,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// PushRequest is the body of POST /sync/push.
type PushRequest struct {
	Data          *Dataset `json:"data"`
	ClientVersion int64    `json:"clientVersion"`
}

// PushResponse is returned by POST /sync/push.
type PushResponse struct {
	Success  bool       `json:"success"`
	Version  int64      `json:"version,omitempty"`
	LastSync *time.Time `json:"lastSync,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// DeleteResponse is returned by DELETE /sync/data.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON body of every non-2xx server response.
type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}
