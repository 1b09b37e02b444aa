// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/onda-planner/onda-sync/models"
)

type changeNotifier struct {
	syncService SyncService
}

// NewChangeNotifier returns a ChangeNotifier that requests a debounced sync
// on every change.
func NewChangeNotifier(syncService SyncService) ChangeNotifier {
	return &changeNotifier{syncService: syncService}
}

func (n *changeNotifier) NotifyDataChange(ctx context.Context) {
	n.syncService.TriggerDebouncedSync(ctx)
}

// WithNotify runs op and notifies n when it succeeds. The error of op is
// returned unchanged.
func WithNotify(ctx context.Context, n ChangeNotifier, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	n.NotifyDataChange(ctx)
	return nil
}

// WithNotifyResult is WithNotify for operations that return a value.
func WithNotifyResult[T any](ctx context.Context, n ChangeNotifier, op func(ctx context.Context) (T, error)) (T, error) {
	v, err := op(ctx)
	if err != nil {
		return v, err
	}
	n.NotifyDataChange(ctx)
	return v, nil
}

// ── columns ──────────────────────────────────────────────────────────────────

type notifyingColumnsService struct {
	inner    ColumnsService
	notifier ChangeNotifier
}

// NewNotifyingColumnsService returns a wrapper that notifies after every
// successful Save and Delete.
func NewNotifyingColumnsService(notifier ChangeNotifier) ColumnsServiceWrapper {
	return &notifyingColumnsService{notifier: notifier}
}

func (s *notifyingColumnsService) Wrap(inner ColumnsService) ColumnsService {
	s.inner = inner
	return s
}

func (s *notifyingColumnsService) List(ctx context.Context) ([]models.Column, error) {
	return s.inner.List(ctx)
}

func (s *notifyingColumnsService) Get(ctx context.Context, id string) (models.Column, error) {
	return s.inner.Get(ctx, id)
}

func (s *notifyingColumnsService) FindByType(ctx context.Context, columnType string) ([]models.Column, error) {
	return s.inner.FindByType(ctx, columnType)
}

func (s *notifyingColumnsService) Save(ctx context.Context, col models.Column) (models.Column, error) {
	return WithNotifyResult(ctx, s.notifier, func(ctx context.Context) (models.Column, error) {
		return s.inner.Save(ctx, col)
	})
}

func (s *notifyingColumnsService) Delete(ctx context.Context, id string) error {
	return WithNotify(ctx, s.notifier, func(ctx context.Context) error {
		return s.inner.Delete(ctx, id)
	})
}

// ── calendar ─────────────────────────────────────────────────────────────────

type notifyingCalendarService struct {
	inner    CalendarService
	notifier ChangeNotifier
}

// NewNotifyingCalendarService returns a wrapper that notifies after every
// successful Save and AddEntry.
func NewNotifyingCalendarService(notifier ChangeNotifier) CalendarServiceWrapper {
	return &notifyingCalendarService{notifier: notifier}
}

func (s *notifyingCalendarService) Wrap(inner CalendarService) CalendarService {
	s.inner = inner
	return s
}

func (s *notifyingCalendarService) Get(ctx context.Context) (models.CalendarDocument, error) {
	return s.inner.Get(ctx)
}

func (s *notifyingCalendarService) Save(ctx context.Context, entries []json.RawMessage) error {
	return WithNotify(ctx, s.notifier, func(ctx context.Context) error {
		return s.inner.Save(ctx, entries)
	})
}

func (s *notifyingCalendarService) AddEntry(ctx context.Context, entry json.RawMessage) error {
	return WithNotify(ctx, s.notifier, func(ctx context.Context) error {
		return s.inner.AddEntry(ctx, entry)
	})
}

// ── settings ─────────────────────────────────────────────────────────────────

type notifyingSettingsService struct {
	inner    SettingsService
	notifier ChangeNotifier
}

// NewNotifyingSettingsService returns a wrapper that notifies after every
// successful UpdateSection.
func NewNotifyingSettingsService(notifier ChangeNotifier) SettingsServiceWrapper {
	return &notifyingSettingsService{notifier: notifier}
}

func (s *notifyingSettingsService) Wrap(inner SettingsService) SettingsService {
	s.inner = inner
	return s
}

func (s *notifyingSettingsService) Get(ctx context.Context) (models.SettingsDocument, error) {
	return s.inner.Get(ctx)
}

func (s *notifyingSettingsService) UpdateSection(ctx context.Context, section string, value json.RawMessage) error {
	return WithNotify(ctx, s.notifier, func(ctx context.Context) error {
		return s.inner.UpdateSection(ctx, section, value)
	})
}
