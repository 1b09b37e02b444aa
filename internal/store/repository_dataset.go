// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/models"
)

// datasetRepository is the PostgreSQL-backed implementation of
// [DatasetRepository] over the "sync_data" table.
type datasetRepository struct {
	*DB
	now func() time.Time
}

// NewDatasetRepository constructs a PostgreSQL [DatasetRepository].
func NewDatasetRepository(db *DB) DatasetRepository {
	return &datasetRepository{
		DB:  db,
		now: time.Now,
	}
}

func (r *datasetRepository) Get(ctx context.Context, ownerKey string) (models.StoredDataset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDatasetQuery(ownerKey)
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Get").Msg("failed to build query")
		return models.StoredDataset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		content []byte
		stored  = models.StoredDataset{OwnerKey: ownerKey}
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&content,
		&stored.ContentHash,
		&stored.Version,
		&stored.LastSync,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredDataset{}, ErrDatasetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Get").Msg("failed to read dataset")
		return models.StoredDataset{}, r.wrapError(ErrScanningRow, err)
	}

	if err := json.Unmarshal(content, &stored.Content); err != nil {
		log.Err(err).Str("func", "datasetRepository.Get").Msg("failed to decode stored dataset")
		return models.StoredDataset{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return stored, nil
}

func (r *datasetRepository) Save(ctx context.Context, ownerKey string, data models.Dataset, contentHash string) (models.StoredDataset, error) {
	log := logger.FromContext(ctx)

	content, err := json.Marshal(data)
	if err != nil {
		return models.StoredDataset{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	now := r.now().UTC()
	query, args, err := buildSaveDatasetQuery(ownerKey, content, contentHash, now)
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Save").Msg("failed to build query")
		return models.StoredDataset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored := models.StoredDataset{
		OwnerKey:    ownerKey,
		Content:     data,
		ContentHash: contentHash,
		LastSync:    now,
		UpdatedAt:   now,
	}
	if err := r.QueryRowContext(ctx, query, args...).Scan(&stored.Version, &stored.CreatedAt); err != nil {
		log.Err(err).Str("func", "datasetRepository.Save").Msg("failed to save dataset")
		return models.StoredDataset{}, r.wrapError(ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "datasetRepository.Save").
		Int64("version", stored.Version).
		Int("bytes", len(content)).
		Msg("dataset saved")

	return stored, nil
}

func (r *datasetRepository) Delete(ctx context.Context, ownerKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDatasetQuery(ownerKey)
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Delete").Msg("failed to delete dataset")
		return r.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDatasetNotFound
	}

	return nil
}

func (r *datasetRepository) Ping(ctx context.Context) error {
	if err := r.PingContext(ctx); err != nil {
		return r.wrapError(ErrExecutingQuery, err)
	}
	return nil
}
