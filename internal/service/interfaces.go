// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/onda-planner/onda-sync/models"
)

// DatasetService serves the sync API for one owner key at a time. The owner
// key is derived from the client secret key by the auth middleware.
type DatasetService interface {
	// Pull returns the stored dataset of ownerKey. Exists is false when there
	// is none. HasConflict is set when the client has synced before and is
	// behind the server.
	Pull(ctx context.Context, ownerKey string, req models.PullRequest) (models.PullResponse, error)

	// Push validates and stores req.Data. The first push creates version 1,
	// every later push increments the version.
	Push(ctx context.Context, ownerKey string, req models.PushRequest) (models.PushResponse, error)

	// Get returns the stored dataset without conflict detection.
	Get(ctx context.Context, ownerKey string) (models.PullResponse, error)

	// Delete removes the stored dataset. Deleting a missing dataset succeeds
	// with [app.MsgDataNotFound].
	Delete(ctx context.Context, ownerKey string) (models.DeleteResponse, error)
}

// HealthService reports the server and database state.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DatasetServiceWrapper defines middleware composition for DatasetService.
type DatasetServiceWrapper interface {
	Wrap(DatasetService) DatasetService
}
