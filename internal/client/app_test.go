// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/internal/tui"
	"github.com/onda-planner/onda-sync/models"
)

type fakeSync struct {
	enabled bool
	status  models.SyncStatus
	result  models.SyncResult

	calls []string
}

func (f *fakeSync) Initialize(context.Context) bool {
	f.calls = append(f.calls, "initialize")
	return f.enabled
}

func (f *fakeSync) Sync(ctx context.Context, force bool) models.SyncResult {
	f.calls = append(f.calls, "sync")
	if ctx.Err() != nil {
		return models.SyncResult{Status: models.StatusError, Message: ctx.Err().Error()}
	}
	return f.result
}

func (f *fakeSync) StartAutoSync(context.Context, time.Duration) {}
func (f *fakeSync) StopAutoSync()                                {}
func (f *fakeSync) TriggerDebouncedSync(context.Context)         {}

func (f *fakeSync) CancelDebouncedSync() { f.calls = append(f.calls, "cancel-debounce") }
func (f *fakeSync) Close()               { f.calls = append(f.calls, "close") }

func (f *fakeSync) TestConnection(context.Context, string, string) models.TestConnectionResult {
	return models.TestConnectionResult{}
}

func (f *fakeSync) GetStatus() models.SyncStatus                     { return f.status }
func (f *fakeSync) GetSyncConfig(context.Context) *models.SyncConfig { return nil }

func (f *fakeSync) SaveSyncConfig(context.Context, models.SyncConfigPatch) models.OperationResult {
	return models.OperationResult{}
}

func (f *fakeSync) DeleteServerData(context.Context) models.OperationResult {
	return models.OperationResult{}
}

type fakeUI struct {
	err error
	ran bool
}

func (u *fakeUI) Run(context.Context) error {
	u.ran = true
	return u.err
}

func newTestApp(t *testing.T, s *fakeSync, ui *fakeUI) *App {
	t.Helper()
	app, err := NewApp(&service.ClientServices{SyncService: s}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, &fakeUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSyncService)

	_, err = NewApp(&service.ClientServices{SyncService: &fakeSync{}}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run_Lifecycle(t *testing.T) {
	s := &fakeSync{enabled: true, status: models.SyncStatus{Enabled: true}}
	ui := &fakeUI{}

	err := newTestApp(t, s, ui).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, ui.ran)
	assert.Equal(t, []string{"initialize", "close"}, s.calls)
}

func TestApp_Run_FlushesPendingChanges(t *testing.T) {
	s := &fakeSync{
		enabled: true,
		status:  models.SyncStatus{Enabled: true, HasLocalChanges: true},
		result:  models.SyncResult{Status: models.StatusSuccess, Version: 3},
	}

	err := newTestApp(t, s, &fakeUI{}).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"initialize", "cancel-debounce", "sync", "close"}, s.calls)
}

func TestApp_Run_FlushSurvivesCancelledContext(t *testing.T) {
	s := &fakeSync{
		enabled: true,
		status:  models.SyncStatus{Enabled: true, HasLocalChanges: true},
		result:  models.SyncResult{Status: models.StatusSuccess},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestApp(t, s, &fakeUI{}).Run(ctx)

	require.NoError(t, err)
	assert.Contains(t, s.calls, "sync")
}

func TestApp_Run_NoFlushWhenDisabled(t *testing.T) {
	s := &fakeSync{status: models.SyncStatus{HasLocalChanges: true}}

	err := newTestApp(t, s, &fakeUI{}).Run(context.Background())

	require.NoError(t, err)
	assert.NotContains(t, s.calls, "sync")
}

func TestApp_Run_UIErrors(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "user quit", uiErr: tui.ErrUserQuit, wantErr: false},
		{name: "wrapped user quit", uiErr: errors.Join(errors.New("exit"), tui.ErrUserQuit), wantErr: false},
		{name: "failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSync{}

			err := newTestApp(t, s, &fakeUI{err: tt.uiErr}).Run(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, s.calls, "close")
		})
	}
}
