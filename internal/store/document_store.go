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

	"github.com/tidwall/gjson"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/validators"
	"github.com/onda-planner/onda-sync/models"
)

// documentStore is the SQLite implementation of [DocumentStore].
type documentStore struct {
	*DB
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

// NewDocumentStore constructs a [DocumentStore] over a migrated SQLite
// connection. validator checks datasets before ImportData writes anything.
func NewDocumentStore(db *DB, validator validators.Validator, log *logger.Logger) DocumentStore {
	return &documentStore{
		DB:        db,
		validator: validator,
		logger:    log,
		now:       time.Now,
	}
}

func (s *documentStore) Get(ctx context.Context, collection models.Collection, id string) (models.Document, error) {
	var (
		body      string
		updatedAt int64
	)

	err := s.QueryRowContext(ctx, getDocument, string(collection), id).Scan(&body, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, collection, id)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Get").
			Str("collection", string(collection)).
			Str("id", id).
			Msg("failed to read document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Document{
		Collection: collection,
		ID:         id,
		Body:       json.RawMessage(body),
		UpdatedAt:  time.UnixMilli(updatedAt),
	}, nil
}

func (s *documentStore) Put(ctx context.Context, doc models.Document) error {
	if doc.ID == "" || !gjson.ValidBytes(doc.Body) {
		return fmt.Errorf("%w: %s/%q", ErrEncodingDocument, doc.Collection, doc.ID)
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = s.now()
	}

	_, err := s.ExecContext(ctx, putDocument, string(doc.Collection), doc.ID, string(doc.Body), doc.UpdatedAt.UnixMilli())
	if err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Put").
			Str("collection", string(doc.Collection)).
			Str("id", doc.ID).
			Msg("failed to write document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *documentStore) Delete(ctx context.Context, collection models.Collection, id string) error {
	if _, err := s.ExecContext(ctx, deleteDocument, string(collection), id); err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Delete").
			Str("collection", string(collection)).
			Str("id", id).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *documentStore) Query(ctx context.Context, collection models.Collection, filters ...Filter) ([]models.Document, error) {
	docs, err := listCollection(ctx, s.DB.DB, collection)
	if err != nil {
		s.logger.Err(err).
			Str("func", "documentStore.Query").
			Str("collection", string(collection)).
			Msg("failed to list documents")
		return nil, err
	}

	if len(filters) == 0 {
		return docs, nil
	}

	matched := docs[:0]
	for _, doc := range docs {
		if matchAll(doc.Body, filters) {
			matched = append(matched, doc)
		}
	}

	return matched, nil
}

func (s *documentStore) ExportData(ctx context.Context) (models.Dataset, error) {
	log := s.logger

	tx, err := s.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "documentStore.ExportData").Msg("failed to begin transaction")
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	data := models.Dataset{
		Columns:    []models.Column{},
		Calendar:   []models.CalendarDocument{},
		Settings:   []models.SettingsDocument{},
		Weeks:      []json.RawMessage{},
		ExportDate: s.now().UTC(),
		Version:    models.DatasetFormatVersion,
	}

	for _, collection := range models.Collections {
		docs, err := listCollection(ctx, tx, collection)
		if err != nil {
			log.Err(err).
				Str("func", "documentStore.ExportData").
				Str("collection", string(collection)).
				Msg("failed to read collection")
			return models.Dataset{}, err
		}

		for _, doc := range docs {
			if err := appendDocument(&data, doc); err != nil {
				log.Err(err).
					Str("func", "documentStore.ExportData").
					Str("collection", string(collection)).
					Str("id", doc.ID).
					Msg("failed to decode document")
				return models.Dataset{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return data, nil
}

func (s *documentStore) ImportData(ctx context.Context, data models.Dataset) error {
	log := s.logger

	if err := s.validator.Validate(ctx, data); err != nil {
		log.Warn().Err(err).Str("func", "documentStore.ImportData").Msg("rejected invalid dataset")
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ImportData").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	localSync, err := readLocalSyncConfig(ctx, tx)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ImportData").Msg("failed to read local sync config")
		return err
	}

	for _, collection := range models.Collections {
		if _, err := tx.ExecContext(ctx, deleteCollection, string(collection)); err != nil {
			log.Err(err).
				Str("func", "documentStore.ImportData").
				Str("collection", string(collection)).
				Msg("failed to clear collection")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	docs, err := s.documentsFromDataset(data, localSync)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ImportData").Msg("failed to encode dataset")
		return err
	}

	for _, doc := range docs {
		_, err := tx.ExecContext(ctx, putDocument, string(doc.Collection), doc.ID, string(doc.Body), doc.UpdatedAt.UnixMilli())
		if err != nil {
			log.Err(err).
				Str("func", "documentStore.ImportData").
				Str("collection", string(doc.Collection)).
				Str("id", doc.ID).
				Msg("failed to write document")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "documentStore.ImportData").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "documentStore.ImportData").
		Int("columns", len(data.Columns)).
		Int("calendar", len(data.Calendar)).
		Int("settings", len(data.Settings)).
		Msg("dataset imported")

	return nil
}

func (s *documentStore) Close() error {
	return s.DB.Close()
}

// documentsFromDataset encodes every document of data. Missing updatedAt
// stamps are set to now and localSync replaces whatever sync block the
// incoming settings carry.
func (s *documentStore) documentsFromDataset(data models.Dataset, localSync *models.SyncConfig) ([]models.Document, error) {
	now := s.now()
	stamp := func(ms int64) int64 {
		if ms <= 0 {
			return now.UnixMilli()
		}
		return ms
	}

	docs := make([]models.Document, 0, len(data.Columns)+len(data.Calendar)+len(data.Settings)+1)
	add := func(collection models.Collection, id string, updatedAt int64, v any) error {
		body, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %s/%s: %w", ErrEncodingDocument, collection, id, err)
		}
		docs = append(docs, models.Document{
			Collection: collection,
			ID:         id,
			Body:       body,
			UpdatedAt:  time.UnixMilli(updatedAt),
		})
		return nil
	}

	for _, col := range data.Columns {
		col.UpdatedAt = stamp(col.UpdatedAt)
		if err := add(models.CollectionColumns, col.ID, col.UpdatedAt, col); err != nil {
			return nil, err
		}
	}

	for _, cal := range data.Calendar {
		cal.UpdatedAt = stamp(cal.UpdatedAt)
		if cal.Body == nil {
			cal.Body = []json.RawMessage{}
		}
		if err := add(models.CollectionCalendar, cal.ID, cal.UpdatedAt, cal); err != nil {
			return nil, err
		}
	}

	hasGlobal := false
	for _, set := range data.Settings {
		set.UpdatedAt = stamp(set.UpdatedAt)
		set.Sync = nil
		if set.ID == models.SettingsDocumentID {
			hasGlobal = true
			set.Sync = localSync
		}
		if err := add(models.CollectionSettings, set.ID, set.UpdatedAt, set); err != nil {
			return nil, err
		}
	}

	if !hasGlobal && localSync != nil {
		set := models.SettingsDocument{ID: models.SettingsDocumentID, Sync: localSync, UpdatedAt: now.UnixMilli()}
		if err := add(models.CollectionSettings, set.ID, set.UpdatedAt, set); err != nil {
			return nil, err
		}
	}

	return docs, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func listCollection(ctx context.Context, q queryer, collection models.Collection) ([]models.Document, error) {
	rows, err := q.QueryContext(ctx, listDocuments, string(collection))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 16)
	for rows.Next() {
		var (
			id        string
			body      string
			updatedAt int64
		)
		if err := rows.Scan(&id, &body, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, models.Document{
			Collection: collection,
			ID:         id,
			Body:       json.RawMessage(body),
			UpdatedAt:  time.UnixMilli(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func readLocalSyncConfig(ctx context.Context, q queryer) (*models.SyncConfig, error) {
	var body string
	err := q.QueryRowContext(ctx, getDocument, string(models.CollectionSettings), models.SettingsDocumentID).Scan(&body, new(int64))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	raw := gjson.Get(body, "sync")
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}

	var cfg models.SyncConfig
	if err := json.Unmarshal([]byte(raw.Raw), &cfg); err != nil {
		return nil, fmt.Errorf("%w: settings sync block: %w", ErrDecodingDocument, err)
	}

	return &cfg, nil
}

// appendDocument decodes doc into the matching slice of data. The settings
// sync block is dropped so secrets and local versions never leave the device.
func appendDocument(data *models.Dataset, doc models.Document) error {
	switch doc.Collection {
	case models.CollectionColumns:
		var col models.Column
		if err := json.Unmarshal(doc.Body, &col); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		col.ID = doc.ID
		data.Columns = append(data.Columns, col)
	case models.CollectionCalendar:
		var cal models.CalendarDocument
		if err := json.Unmarshal(doc.Body, &cal); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		cal.ID = doc.ID
		if cal.Body == nil {
			cal.Body = []json.RawMessage{}
		}
		data.Calendar = append(data.Calendar, cal)
	case models.CollectionSettings:
		var set models.SettingsDocument
		if err := json.Unmarshal(doc.Body, &set); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		set.ID = doc.ID
		set.Sync = nil
		data.Settings = append(data.Settings, set)
	}

	return nil
}
