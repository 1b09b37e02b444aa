// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/models"
)

type countingNotifier struct {
	calls atomic.Int32
}

func (n *countingNotifier) NotifyDataChange(context.Context) {
	n.calls.Add(1)
}

type stubColumns struct {
	err error
}

func (s stubColumns) List(context.Context) ([]models.Column, error) { return nil, s.err }
func (s stubColumns) Get(context.Context, string) (models.Column, error) {
	return models.Column{}, s.err
}
func (s stubColumns) FindByType(context.Context, string) ([]models.Column, error) { return nil, s.err }
func (s stubColumns) Save(_ context.Context, col models.Column) (models.Column, error) {
	return col, s.err
}
func (s stubColumns) Delete(context.Context, string) error { return s.err }

// ── WithNotify ────────────────────────────────────────────────────────────────

func TestWithNotify(t *testing.T) {
	n := &countingNotifier{}

	err := WithNotify(context.Background(), n, func(context.Context) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, int32(1), n.calls.Load())
}

func TestWithNotify_ErrorSkipsNotification(t *testing.T) {
	n := &countingNotifier{}
	boom := errors.New("boom")

	err := WithNotify(context.Background(), n, func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n.calls.Load())
}

func TestWithNotifyResult(t *testing.T) {
	n := &countingNotifier{}

	v, err := WithNotifyResult(context.Background(), n, func(context.Context) (int, error) { return 42, nil })

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int32(1), n.calls.Load())
}

// ── ChangeNotifier ────────────────────────────────────────────────────────────

func TestChangeNotifier_TriggersDebouncedSync(t *testing.T) {
	ops := &fakeOperations{}
	svc, state, _ := newTestSyncService(t, nil, ops)

	NewChangeNotifier(svc).NotifyDataChange(context.Background())

	assert.True(t, state.HasLocalChanges())
	assert.True(t, svc.GetStatus().HasLocalChanges)
}

// ── wrappers ──────────────────────────────────────────────────────────────────

func TestNotifyingColumns_WritesNotify(t *testing.T) {
	n := &countingNotifier{}
	cols := NewNotifyingColumnsService(n).Wrap(stubColumns{})
	ctx := context.Background()

	_, err := cols.Save(ctx, models.Column{ID: "c1", Type: "tasks"})
	require.NoError(t, err)
	require.NoError(t, cols.Delete(ctx, "c1"))

	assert.Equal(t, int32(2), n.calls.Load())
}

func TestNotifyingColumns_ReadsDoNotNotify(t *testing.T) {
	n := &countingNotifier{}
	cols := NewNotifyingColumnsService(n).Wrap(stubColumns{})
	ctx := context.Background()

	_, _ = cols.List(ctx)
	_, _ = cols.Get(ctx, "c1")
	_, _ = cols.FindByType(ctx, "tasks")

	assert.Zero(t, n.calls.Load())
}

func TestNotifyingColumns_FailedWritePropagates(t *testing.T) {
	n := &countingNotifier{}
	boom := errors.New("disk full")
	cols := NewNotifyingColumnsService(n).Wrap(stubColumns{err: boom})

	_, err := cols.Save(context.Background(), models.Column{ID: "c1"})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n.calls.Load())
}

func TestNotifyingCalendarAndSettings(t *testing.T) {
	documents := newTestDocumentStore(t)
	n := &countingNotifier{}
	ctx := context.Background()

	cal := NewNotifyingCalendarService(n).Wrap(NewCalendarService(documents))
	settings := NewNotifyingSettingsService(n).Wrap(newSettingsService(newSettingsDocument(documents)))

	require.NoError(t, cal.AddEntry(ctx, json.RawMessage(`{"date":"2026-01-01"}`)))
	require.NoError(t, cal.Save(ctx, nil))
	require.NoError(t, settings.UpdateSection(ctx, "theme", json.RawMessage(`{"mode":"light"}`)))

	_, err := cal.Get(ctx)
	require.NoError(t, err)
	_, err = settings.Get(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, settings.UpdateSection(ctx, "sync", json.RawMessage(`{}`)), ErrUnknownSection)
	assert.Equal(t, int32(3), n.calls.Load())
}
