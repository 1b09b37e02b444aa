// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/onda-planner/onda-sync/models"
)

// SyncConfigManager reads and writes the durable sync configuration kept in
// the `sync` field of the global settings document. It never returns errors:
// failures are logged and reported as result values.
type SyncConfigManager interface {
	// GetSyncConfig returns the stored config, or nil when none is stored or
	// it cannot be read.
	GetSyncConfig(ctx context.Context) *models.SyncConfig

	// SaveSyncConfig merges patch into the stored config, creating it when
	// missing. Version and LastSync are always overwritten with the values
	// passed by the caller.
	SaveSyncConfig(ctx context.Context, patch models.SyncConfigPatch, version int64, lastSync *time.Time) models.OperationResult
}

// SyncOperations performs the network verbs of the sync protocol. Each call
// makes a single attempt and converts every failure into a result value.
type SyncOperations interface {
	// PullFromServer asks the server for its dataset. HasNewData is true only
	// when the server holds a dataset with a version above clientVersion.
	PullFromServer(ctx context.Context, serverURL, secretKey string, clientVersion int64, clientLastSync *time.Time) models.PullResult

	// PushToServer exports the whole local dataset and uploads it. On success
	// the result carries the version and lastSync assigned by the server.
	PushToServer(ctx context.Context, serverURL, secretKey string, clientVersion int64) models.PushResult

	// MergeServerData replaces the local dataset with data in one atomic
	// import.
	MergeServerData(ctx context.Context, data *models.Dataset, serverVersion int64) models.OperationResult

	// TestConnection probes /health and then the authenticated /sync/data
	// endpoint. Keys shorter than [models.MinSecretKeyLength] are rejected
	// without a network call.
	TestConnection(ctx context.Context, serverURL, secretKey string) models.TestConnectionResult

	// DeleteServerData removes the dataset stored on the server for
	// secretKey.
	DeleteServerData(ctx context.Context, serverURL, secretKey string) models.OperationResult
}

// SyncStateManager owns the in-memory sync state and both sync timers. No
// other component starts or stops timers.
type SyncStateManager interface {
	// Hydrate copies the durable fields of cfg into memory.
	Hydrate(cfg models.SyncConfig)
	// SetRemote replaces the server URL and secret key.
	SetRemote(serverURL, secretKey string)
	// Remote returns the server URL and secret key.
	Remote() (serverURL, secretKey string)
	// IsConfigured reports whether both server URL and secret key are set.
	IsConfigured() bool

	// TryBeginSync marks a sync as running unless one already is.
	TryBeginSync() bool
	// BeginSync marks a sync as running unconditionally. Callers must
	// serialise execution themselves.
	BeginSync()
	// EndSync releases one BeginSync or successful TryBeginSync.
	EndSync()
	// IsSyncInProgress reports whether a sync is running.
	IsSyncInProgress() bool

	// LocalVersion returns the version this client considers authoritative.
	LocalVersion() int64
	// LastSyncTime returns the time of the last completed sync.
	LastSyncTime() *time.Time
	// AdoptVersion records a version and lastSync confirmed by the server.
	AdoptVersion(version int64, lastSync *time.Time)
	// ResetVersion forgets the local version. Used after the server dataset
	// was deleted.
	ResetVersion()

	// MarkLocalChanges sets the dirty flag and returns the change sequence.
	MarkLocalChanges() uint64
	// HasLocalChanges reports the dirty flag.
	HasLocalChanges() bool
	// ChangeSeq returns the current change sequence.
	ChangeSeq() uint64
	// ClearLocalChanges clears the dirty flag unless changes were recorded
	// after seq was read.
	ClearLocalChanges(seq uint64) bool

	// ScheduleDebouncedSync marks local changes and, when configured,
	// (re)starts the debounce timer that calls fn.
	ScheduleDebouncedSync(ctx context.Context, fn func(ctx context.Context))
	// CancelDebouncedSync stops the debounce timer. The dirty flag is kept.
	CancelDebouncedSync()
	// StartAutoSync replaces any running auto-sync ticker with one calling fn
	// every interval.
	StartAutoSync(ctx context.Context, fn func(ctx context.Context), interval time.Duration)
	// StopAutoSync stops the auto-sync ticker and waits for it to exit.
	StopAutoSync()

	// Status returns a snapshot for status displays.
	Status() models.SyncStatus
	// Cleanup stops both timers.
	Cleanup()
}

// SyncService is the entry point of the client sync engine.
type SyncService interface {
	// Initialize loads the stored config and, when sync is enabled and
	// configured, hydrates state, starts auto-sync if requested and runs one
	// sync. It reports whether sync was activated. A failing first sync does
	// not fail initialisation.
	Initialize(ctx context.Context) bool

	// Sync pushes local changes when there are any, pulls, and merges newer
	// server data. A non-forced call made while another sync runs is
	// skipped; a forced call waits for it.
	Sync(ctx context.Context, force bool) models.SyncResult

	// StartAutoSync starts periodic non-forced syncs. A non-positive interval
	// selects the configured default.
	StartAutoSync(ctx context.Context, interval time.Duration)
	StopAutoSync()

	// TriggerDebouncedSync marks local changes and schedules a sync once
	// writes settle.
	TriggerDebouncedSync(ctx context.Context)
	CancelDebouncedSync()

	TestConnection(ctx context.Context, serverURL, secretKey string) models.TestConnectionResult
	GetStatus() models.SyncStatus
	GetSyncConfig(ctx context.Context) *models.SyncConfig
	SaveSyncConfig(ctx context.Context, patch models.SyncConfigPatch) models.OperationResult

	// DeleteServerData removes the server dataset and resets the local
	// version so the next sync re-seeds the server.
	DeleteServerData(ctx context.Context) models.OperationResult

	// Close stops every timer.
	Close()
}

// ChangeNotifier is told about every successful local write.
type ChangeNotifier interface {
	NotifyDataChange(ctx context.Context)
}

// ColumnsService manages the columns of the weekly table.
type ColumnsService interface {
	List(ctx context.Context) ([]models.Column, error)
	Get(ctx context.Context, id string) (models.Column, error)
	// FindByType returns the columns whose type equals columnType.
	FindByType(ctx context.Context, columnType string) ([]models.Column, error)
	// Save inserts or replaces col. An empty ID is generated.
	Save(ctx context.Context, col models.Column) (models.Column, error)
	Delete(ctx context.Context, id string) error
}

// CalendarService manages the single calendar document.
type CalendarService interface {
	Get(ctx context.Context) (models.CalendarDocument, error)
	Save(ctx context.Context, entries []json.RawMessage) error
	AddEntry(ctx context.Context, entry json.RawMessage) error
}

// SettingsService manages the sections of the global settings document other
// than sync.
type SettingsService interface {
	Get(ctx context.Context) (models.SettingsDocument, error)
	// UpdateSection replaces one section (theme, table, ui, header or
	// calendar) of the settings document.
	UpdateSection(ctx context.Context, section string, value json.RawMessage) error
}

// ColumnsServiceWrapper decorates a ColumnsService.
type ColumnsServiceWrapper interface {
	Wrap(ColumnsService) ColumnsService
}

// CalendarServiceWrapper decorates a CalendarService.
type CalendarServiceWrapper interface {
	Wrap(CalendarService) CalendarService
}

// SettingsServiceWrapper decorates a SettingsService.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService
}
