// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/models"
)

const defaultAutoSyncInterval = models.DefaultSyncInterval * time.Millisecond

type syncStateManager struct {
	mu sync.Mutex

	serverURL    string
	secretKey    string
	localVersion int64
	lastSyncTime *time.Time

	inFlight        int
	hasLocalChanges bool
	changeSeq       uint64

	debounceDelay time.Duration
	debounceTimer *time.Timer

	autoSync autoSyncJob

	logger *logger.Logger
}

// NewSyncStateManager constructs an empty SyncStateManager. A non-positive
// debounceDelay selects models.DefaultDebounceDelay.
func NewSyncStateManager(debounceDelay time.Duration, logger *logger.Logger) SyncStateManager {
	if debounceDelay <= 0 {
		debounceDelay = models.DefaultDebounceDelay
	}

	return &syncStateManager{
		debounceDelay: debounceDelay,
		logger:        logger,
	}
}

func (s *syncStateManager) Hydrate(cfg models.SyncConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.serverURL = cfg.ServerURL
	s.secretKey = cfg.SecretKey
	s.localVersion = cfg.Version
	s.lastSyncTime = cfg.LastSync
}

func (s *syncStateManager) SetRemote(serverURL, secretKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.serverURL = serverURL
	s.secretKey = secretKey
}

func (s *syncStateManager) Remote() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.serverURL, s.secretKey
}

func (s *syncStateManager) IsConfigured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isConfigured()
}

func (s *syncStateManager) isConfigured() bool {
	return s.serverURL != "" && s.secretKey != ""
}

func (s *syncStateManager) TryBeginSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight > 0 {
		return false
	}
	s.inFlight++
	return true
}

func (s *syncStateManager) BeginSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight++
}

func (s *syncStateManager) EndSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight > 0 {
		s.inFlight--
	}
}

func (s *syncStateManager) IsSyncInProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inFlight > 0
}

func (s *syncStateManager) LocalVersion() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.localVersion
}

func (s *syncStateManager) LastSyncTime() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSyncTime
}

func (s *syncStateManager) AdoptVersion(version int64, lastSync *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version < s.localVersion {
		s.logger.Warn().
			Str("func", "syncStateManager.AdoptVersion").
			Int64("local_version", s.localVersion).
			Int64("server_version", version).
			Msg("server version is behind the local version, server data was reset")
	}
	s.localVersion = version
	s.lastSyncTime = lastSync
}

func (s *syncStateManager) ResetVersion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.localVersion = 0
	s.lastSyncTime = nil
}

func (s *syncStateManager) MarkLocalChanges() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.markLocalChanges()
}

func (s *syncStateManager) markLocalChanges() uint64 {
	s.hasLocalChanges = true
	s.changeSeq++
	return s.changeSeq
}

func (s *syncStateManager) HasLocalChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasLocalChanges
}

func (s *syncStateManager) ChangeSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.changeSeq
}

func (s *syncStateManager) ClearLocalChanges(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// writes made while the push was in flight are not on the server yet
	if s.changeSeq != seq {
		return false
	}
	s.hasLocalChanges = false
	return true
}

func (s *syncStateManager) ScheduleDebouncedSync(ctx context.Context, fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markLocalChanges()

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}

	if !s.isConfigured() {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.debounceDelay, func() {
		s.mu.Lock()
		if s.debounceTimer == timer {
			s.debounceTimer = nil
		}
		s.mu.Unlock()

		s.logger.Debug().Str("func", "syncStateManager.ScheduleDebouncedSync").Msg("debounced sync triggered")
		fn(ctx)
	})
	s.debounceTimer = timer
}

func (s *syncStateManager) CancelDebouncedSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
		s.debounceTimer = nil
	}
}

func (s *syncStateManager) StartAutoSync(ctx context.Context, fn func(ctx context.Context), interval time.Duration) {
	s.autoSync.Start(ctx, fn, interval)

	s.logger.Info().
		Str("func", "syncStateManager.StartAutoSync").
		Dur("interval", interval).
		Msg("auto-sync started")
}

func (s *syncStateManager) StopAutoSync() {
	if !s.autoSync.Running() {
		return
	}
	s.autoSync.Stop()

	s.logger.Info().Str("func", "syncStateManager.StopAutoSync").Msg("auto-sync stopped")
}

func (s *syncStateManager) Status() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.SyncStatus{
		Enabled:         s.isConfigured(),
		Syncing:         s.inFlight > 0,
		Version:         s.localVersion,
		LastSync:        s.lastSyncTime,
		AutoSyncActive:  s.autoSync.Running(),
		HasLocalChanges: s.hasLocalChanges,
	}
}

func (s *syncStateManager) Cleanup() {
	s.StopAutoSync()
	s.CancelDebouncedSync()
}
