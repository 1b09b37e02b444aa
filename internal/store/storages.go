// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/validators"
)

// Storages groups the server repositories.
type Storages struct {
	DatasetRepository DatasetRepository

	db *DB
}

// NewStorages opens the server storage. With a DSN it connects to
// PostgreSQL and runs migrations; without one datasets live in memory.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database configured, datasets are kept in memory")
		return &Storages{DatasetRepository: NewMemoryDatasetRepository()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DatasetRepository: NewDatasetRepository(db),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ClientStorages groups the client repositories.
type ClientStorages struct {
	DocumentStore DocumentStore
}

// NewClientStorages opens the client SQLite file, runs migrations and wires
// the document store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DocumentStore: NewDocumentStore(db, validators.NewDatasetValidator(), log),
	}, nil
}
