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

	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/models"
)

// settingsDocument serialises read-modify-write cycles on the global settings
// document. The sync config and the other settings sections live in the same
// document, so both writers go through one lock. Unknown fields survive an
// update.
type settingsDocument struct {
	store store.DocumentStore

	mu  sync.Mutex
	now func() time.Time
}

func newSettingsDocument(s store.DocumentStore) *settingsDocument {
	return &settingsDocument{store: s, now: time.Now}
}

// read returns the top-level fields of the settings document. found is false
// when the document does not exist.
func (d *settingsDocument) read(ctx context.Context) (fields map[string]json.RawMessage, found bool, err error) {
	doc, err := d.store.Get(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := json.Unmarshal(doc.Body, &fields); err != nil {
		return nil, true, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}

	return fields, true, nil
}

// update applies fn to the settings fields and writes the document back,
// creating it when missing.
func (d *settingsDocument) update(ctx context.Context, fn func(fields map[string]json.RawMessage) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	fields, found, err := d.read(ctx)
	if err != nil {
		return err
	}
	if !found {
		fields = map[string]json.RawMessage{"id": json.RawMessage(`"` + models.SettingsDocumentID + `"`)}
	}

	if err := fn(fields); err != nil {
		return err
	}

	now := d.now()
	stamp, err := json.Marshal(now.UnixMilli())
	if err != nil {
		return err
	}
	fields["updatedAt"] = stamp

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return d.store.Put(ctx, models.Document{
		Collection: models.CollectionSettings,
		ID:         models.SettingsDocumentID,
		Body:       body,
		UpdatedAt:  now,
	})
}
