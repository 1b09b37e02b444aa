// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the client sync engine to
// talk to the remote sync server.
//
// The primary abstraction is [SyncAdapter]. It is stateless: the server URL
// and secret key travel with every call in a [Remote], because the user can
// change both at any time from the settings screen.
//
// Non-2xx responses are mapped to [*HTTPError] values that unwrap to the
// sentinel errors in errors.go, so callers can use [errors.Is] for
// transport-agnostic handling and [errors.As] to recover the status code.
package adapter

import (
	"context"

	"github.com/onda-planner/onda-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// Remote identifies a sync server and the secret key used against it.
type Remote struct {
	ServerURL string
	SecretKey string
}

// SyncAdapter defines communication with the remote sync server. Every
// method performs exactly one request and never retries.
type SyncAdapter interface {
	// Health calls GET /health. No secret key is sent.
	Health(ctx context.Context, serverURL string) (models.HealthResponse, error)

	// Pull calls POST /sync/pull with the client's version stamp.
	Pull(ctx context.Context, remote Remote, req models.PullRequest) (models.PullResponse, error)

	// Push calls POST /sync/push with the full local dataset. When a hash key
	// is configured the body is signed with the HashSHA256 header.
	Push(ctx context.Context, remote Remote, req models.PushRequest) (models.PushResponse, error)

	// GetData calls GET /sync/data. It doubles as the authentication probe.
	GetData(ctx context.Context, remote Remote) (models.PullResponse, error)

	// DeleteData calls DELETE /sync/data.
	DeleteData(ctx context.Context, remote Remote) (models.DeleteResponse, error)
}
