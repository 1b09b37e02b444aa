// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/onda-planner/onda-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore is the client's local document database.
type DocumentStore interface {
	// Get returns one document or [ErrDocumentNotFound].
	Get(ctx context.Context, collection models.Collection, id string) (models.Document, error)
	// Put inserts or replaces a document.
	Put(ctx context.Context, doc models.Document) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection models.Collection, id string) error
	// Query returns the documents of a collection matching every filter.
	Query(ctx context.Context, collection models.Collection, filters ...Filter) ([]models.Document, error)

	// ExportData returns a consistent snapshot of every collection, read in a
	// single transaction. The sync block of the settings document is never
	// exported.
	ExportData(ctx context.Context) (models.Dataset, error)
	// ImportData replaces every collection with data in a single write
	// transaction. On any error nothing is changed. The local sync block of
	// the settings document survives the import.
	ImportData(ctx context.Context, data models.Dataset) error

	Close() error
}

// DatasetRepository keeps the server copy of each client dataset.
type DatasetRepository interface {
	// Get returns the dataset stored for ownerKey or [ErrDatasetNotFound].
	Get(ctx context.Context, ownerKey string) (models.StoredDataset, error)
	// Save stores data for ownerKey. A new dataset starts at version 1; an
	// existing one is replaced and its version incremented atomically.
	Save(ctx context.Context, ownerKey string, data models.Dataset, contentHash string) (models.StoredDataset, error)
	// Delete removes the dataset of ownerKey or returns [ErrDatasetNotFound].
	Delete(ctx context.Context, ownerKey string) error
	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}
