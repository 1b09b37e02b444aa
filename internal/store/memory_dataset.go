// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/onda-planner/onda-sync/models"
)

// memoryDatasetRepository keeps datasets in process memory. It is used when
// no database is configured and by end-to-end tests.
type memoryDatasetRepository struct {
	mu       sync.RWMutex
	datasets map[string]models.StoredDataset
	now      func() time.Time
}

// NewMemoryDatasetRepository constructs an in-memory [DatasetRepository].
func NewMemoryDatasetRepository() DatasetRepository {
	return &memoryDatasetRepository{
		datasets: make(map[string]models.StoredDataset),
		now:      time.Now,
	}
}

func (r *memoryDatasetRepository) Get(_ context.Context, ownerKey string) (models.StoredDataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.datasets[ownerKey]
	if !ok {
		return models.StoredDataset{}, ErrDatasetNotFound
	}
	return stored, nil
}

func (r *memoryDatasetRepository) Save(_ context.Context, ownerKey string, data models.Dataset, contentHash string) (models.StoredDataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	stored, ok := r.datasets[ownerKey]
	if !ok {
		stored = models.StoredDataset{OwnerKey: ownerKey, CreatedAt: now}
	}

	stored.Content = data
	stored.ContentHash = contentHash
	stored.Version++
	stored.LastSync = now
	stored.UpdatedAt = now
	r.datasets[ownerKey] = stored

	return stored, nil
}

func (r *memoryDatasetRepository) Delete(_ context.Context, ownerKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.datasets[ownerKey]; !ok {
		return ErrDatasetNotFound
	}
	delete(r.datasets, ownerKey)
	return nil
}

func (r *memoryDatasetRepository) Ping(context.Context) error {
	return nil
}
