// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/internal/utils"
	"github.com/onda-planner/onda-sync/internal/validators"
	"github.com/onda-planner/onda-sync/models"
)

// ── columns ──────────────────────────────────────────────────────────────────

type columnsService struct {
	documents store.DocumentStore
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time
}

// NewColumnsService constructs a ColumnsService over the local store.
func NewColumnsService(documents store.DocumentStore) ColumnsService {
	return &columnsService{
		documents: documents,
		validator: validators.NewDatasetValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

func (s *columnsService) List(ctx context.Context) ([]models.Column, error) {
	docs, err := s.documents.Query(ctx, models.CollectionColumns)
	if err != nil {
		return nil, err
	}
	return decodeColumns(docs)
}

func (s *columnsService) Get(ctx context.Context, id string) (models.Column, error) {
	doc, err := s.documents.Get(ctx, models.CollectionColumns, id)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	if err != nil {
		return models.Column{}, err
	}
	return decodeColumn(doc)
}

func (s *columnsService) FindByType(ctx context.Context, columnType string) ([]models.Column, error) {
	docs, err := s.documents.Query(ctx, models.CollectionColumns, store.Eq("type", columnType))
	if err != nil {
		return nil, err
	}
	return decodeColumns(docs)
}

func (s *columnsService) Save(ctx context.Context, col models.Column) (models.Column, error) {
	if col.ID == "" {
		col.ID = s.ids.Generate()
	}

	now := s.now()
	col.UpdatedAt = now.UnixMilli()

	check := models.Dataset{Columns: []models.Column{col}, Version: models.DatasetFormatVersion}
	if err := s.validator.Validate(ctx, check, validators.FieldColumns); err != nil {
		return models.Column{}, fmt.Errorf("%w: %w", ErrInvalidColumn, err)
	}

	body, err := json.Marshal(col)
	if err != nil {
		return models.Column{}, fmt.Errorf("%w: %w", ErrInvalidColumn, err)
	}

	err = s.documents.Put(ctx, models.Document{
		Collection: models.CollectionColumns,
		ID:         col.ID,
		Body:       body,
		UpdatedAt:  now,
	})
	if err != nil {
		return models.Column{}, err
	}

	return col, nil
}

func (s *columnsService) Delete(ctx context.Context, id string) error {
	return s.documents.Delete(ctx, models.CollectionColumns, id)
}

func decodeColumn(doc models.Document) (models.Column, error) {
	var col models.Column
	if err := json.Unmarshal(doc.Body, &col); err != nil {
		return models.Column{}, fmt.Errorf("%w: %w", store.ErrDecodingDocument, err)
	}
	col.ID = doc.ID
	return col, nil
}

func decodeColumns(docs []models.Document) ([]models.Column, error) {
	cols := make([]models.Column, 0, len(docs))
	for _, doc := range docs {
		col, err := decodeColumn(doc)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ── calendar ─────────────────────────────────────────────────────────────────

type calendarService struct {
	documents store.DocumentStore

	mu  sync.Mutex
	now func() time.Time
}

// NewCalendarService constructs a CalendarService over the local store.
func NewCalendarService(documents store.DocumentStore) CalendarService {
	return &calendarService{documents: documents, now: time.Now}
}

func (s *calendarService) Get(ctx context.Context) (models.CalendarDocument, error) {
	doc, err := s.documents.Get(ctx, models.CollectionCalendar, models.CalendarDocumentID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.CalendarDocument{ID: models.CalendarDocumentID, Body: []json.RawMessage{}}, nil
	}
	if err != nil {
		return models.CalendarDocument{}, err
	}

	var cal models.CalendarDocument
	if err := json.Unmarshal(doc.Body, &cal); err != nil {
		return models.CalendarDocument{}, fmt.Errorf("%w: %w", store.ErrDecodingDocument, err)
	}
	cal.ID = doc.ID
	if cal.Body == nil {
		cal.Body = []json.RawMessage{}
	}

	return cal, nil
}

func (s *calendarService) Save(ctx context.Context, entries []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, entries)
}

func (s *calendarService) AddEntry(ctx context.Context, entry json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cal, err := s.Get(ctx)
	if err != nil {
		return err
	}

	return s.save(ctx, append(cal.Body, entry))
}

func (s *calendarService) save(ctx context.Context, entries []json.RawMessage) error {
	for i, entry := range entries {
		if !gjson.ValidBytes(entry) {
			return fmt.Errorf("%w: calendar entry %d is not valid JSON", ErrInvalidDataProvided, i)
		}
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}

	now := s.now()
	body, err := json.Marshal(models.CalendarDocument{
		ID:        models.CalendarDocumentID,
		Body:      entries,
		UpdatedAt: now.UnixMilli(),
	})
	if err != nil {
		return err
	}

	return s.documents.Put(ctx, models.Document{
		Collection: models.CollectionCalendar,
		ID:         models.CalendarDocumentID,
		Body:       body,
		UpdatedAt:  now,
	})
}

// ── settings ─────────────────────────────────────────────────────────────────

var settingsSections = map[string]struct{}{
	"theme":    {},
	"table":    {},
	"ui":       {},
	"header":   {},
	"calendar": {},
}

type settingsService struct {
	settings *settingsDocument
}

func newSettingsService(settings *settingsDocument) SettingsService {
	return &settingsService{settings: settings}
}

// Get returns the settings document without its sync block.
func (s *settingsService) Get(ctx context.Context) (models.SettingsDocument, error) {
	doc, err := s.settings.store.Get(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.SettingsDocument{ID: models.SettingsDocumentID}, nil
	}
	if err != nil {
		return models.SettingsDocument{}, err
	}

	var set models.SettingsDocument
	if err := json.Unmarshal(doc.Body, &set); err != nil {
		return models.SettingsDocument{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	set.ID = doc.ID
	set.Sync = nil

	return set, nil
}

func (s *settingsService) UpdateSection(ctx context.Context, section string, value json.RawMessage) error {
	if _, ok := settingsSections[section]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if !gjson.ValidBytes(value) {
		return fmt.Errorf("%w: section %q is not valid JSON", ErrInvalidSettings, section)
	}

	return s.settings.update(ctx, func(fields map[string]json.RawMessage) error {
		fields[section] = value
		return nil
	})
}
