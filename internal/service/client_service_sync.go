// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/models"
)

type syncService struct {
	configManager SyncConfigManager
	operations    SyncOperations
	state         SyncStateManager

	// execMu keeps two syncs from interleaving pushes and merges against the
	// local store.
	execMu sync.Mutex

	defaultInterval time.Duration
	now             func() time.Time

	logger *logger.Logger
}

// NewSyncService composes the sync engine. workers.SyncInterval is used
// when neither the caller nor the stored config names an auto-sync interval.
func NewSyncService(
	configManager SyncConfigManager,
	operations SyncOperations,
	state SyncStateManager,
	workers config.ClientWorkers,
	logger *logger.Logger,
) SyncService {
	interval := workers.SyncInterval
	if interval <= 0 {
		interval = defaultAutoSyncInterval
	}

	return &syncService{
		configManager:   configManager,
		operations:      operations,
		state:           state,
		defaultInterval: interval,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *syncService) Initialize(ctx context.Context) bool {
	cfg := s.configManager.GetSyncConfig(ctx)
	if cfg == nil || !cfg.Enabled || !cfg.IsComplete() {
		s.logger.Info().Str("func", "syncService.Initialize").Msg("sync is not enabled")
		return false
	}

	s.state.Hydrate(*cfg)

	if cfg.AutoSync {
		s.StartAutoSync(ctx, cfg.Interval())
	} else {
		s.state.StopAutoSync()
	}

	result := s.Sync(ctx, false)
	s.logger.Info().
		Str("func", "syncService.Initialize").
		Str("status", string(result.Status)).
		Str("message", result.Message).
		Int64("version", s.state.LocalVersion()).
		Msg("sync service initialized")

	return true
}

func (s *syncService) Sync(ctx context.Context, force bool) (result models.SyncResult) {
	if !force && s.state.IsSyncInProgress() {
		s.logger.Debug().Str("func", "syncService.Sync").Msg("sync already in progress, skipping")
		return models.SyncResult{Status: models.StatusSkipped, Message: app.MsgSyncInProgress}
	}

	if !s.state.IsConfigured() {
		return models.SyncResult{Status: models.StatusError, Message: app.MsgSyncNotConfigured}
	}

	if !s.acquire(force) {
		return models.SyncResult{Status: models.StatusSkipped, Message: app.MsgSyncInProgress}
	}
	defer s.release()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("func", "syncService.Sync").
				Interface("panic", r).
				Msg("sync panicked")
			result = models.SyncResult{Status: models.StatusError, Message: fmt.Sprintf("%s: %v", app.MsgSyncFailed, r)}
		}
	}()

	return s.run(ctx)
}

// run executes push, pull and merge. The caller holds the execution lock.
func (s *syncService) run(ctx context.Context) models.SyncResult {
	log := s.logger
	serverURL, secretKey := s.state.Remote()

	var pushed bool
	if s.state.HasLocalChanges() {
		seq := s.state.ChangeSeq()
		push := s.operations.PushToServer(ctx, serverURL, secretKey, s.state.LocalVersion())

		if push.Success {
			pushed = true
			s.state.ClearLocalChanges(seq)

			lastSync := push.LastSync
			if lastSync == nil {
				now := s.now().UTC()
				lastSync = &now
			}
			s.state.AdoptVersion(push.Version, lastSync)
			s.persistState(ctx)
		} else {
			log.Warn().
				Str("func", "syncService.Sync").
				Str("message", push.Message).
				Msg("push failed, continuing with pull")
		}
	}

	pull := s.operations.PullFromServer(ctx, serverURL, secretKey, s.state.LocalVersion(), s.state.LastSyncTime())
	if pull.Status == models.StatusError {
		msg := pull.Message
		if msg == "" {
			msg = app.MsgPullFailed
		}
		return models.SyncResult{Status: models.StatusError, Message: msg, Pushed: pushed, Version: s.state.LocalVersion()}
	}

	if pull.HasNewData {
		merge := s.operations.MergeServerData(ctx, pull.Data, pull.Version)
		if !merge.OK() {
			return models.SyncResult{Status: models.StatusError, Message: merge.Message, Pushed: pushed, Version: s.state.LocalVersion()}
		}

		now := s.now().UTC()
		s.state.AdoptVersion(pull.Version, &now)
		s.persistState(ctx)

		log.Info().
			Str("func", "syncService.Sync").
			Int64("version", pull.Version).
			Bool("has_conflict", pull.HasConflict).
			Msg("merged newer server data")
	}

	timestamp := s.now().UTC()
	return models.SyncResult{
		Status:    models.StatusSuccess,
		Message:   app.MsgSyncCompleted,
		Pulled:    pull.HasNewData,
		Pushed:    pushed,
		Version:   s.state.LocalVersion(),
		Timestamp: &timestamp,
	}
}

// acquire marks a sync as running. A forced sync waits for the running one.
func (s *syncService) acquire(force bool) bool {
	if force {
		s.execMu.Lock()
		s.state.BeginSync()
		return true
	}

	if !s.state.TryBeginSync() {
		return false
	}
	s.execMu.Lock()
	return true
}

func (s *syncService) release() {
	s.state.EndSync()
	s.execMu.Unlock()
}

func (s *syncService) persistState(ctx context.Context) {
	res := s.configManager.SaveSyncConfig(ctx, models.SyncConfigPatch{}, s.state.LocalVersion(), s.state.LastSyncTime())
	if !res.OK() {
		s.logger.Error().
			Str("func", "syncService.persistState").
			Str("message", res.Message).
			Msg("failed to persist sync state")
	}
}

func (s *syncService) StartAutoSync(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.defaultInterval
	}

	s.state.StartAutoSync(context.WithoutCancel(ctx), func(ctx context.Context) {
		s.Sync(ctx, false)
	}, interval)
}

func (s *syncService) StopAutoSync() {
	s.state.StopAutoSync()
}

func (s *syncService) TriggerDebouncedSync(ctx context.Context) {
	s.state.ScheduleDebouncedSync(context.WithoutCancel(ctx), func(ctx context.Context) {
		s.Sync(ctx, false)
	})
}

func (s *syncService) CancelDebouncedSync() {
	s.state.CancelDebouncedSync()
}

func (s *syncService) TestConnection(ctx context.Context, serverURL, secretKey string) models.TestConnectionResult {
	return s.operations.TestConnection(ctx, serverURL, secretKey)
}

func (s *syncService) GetStatus() models.SyncStatus {
	return s.state.Status()
}

func (s *syncService) GetSyncConfig(ctx context.Context) *models.SyncConfig {
	return s.configManager.GetSyncConfig(ctx)
}

func (s *syncService) SaveSyncConfig(ctx context.Context, patch models.SyncConfigPatch) models.OperationResult {
	res := s.configManager.SaveSyncConfig(ctx, patch, s.state.LocalVersion(), s.state.LastSyncTime())
	if !res.OK() {
		return res
	}

	if patch.ServerURL != nil || patch.SecretKey != nil {
		serverURL, secretKey := s.state.Remote()
		if patch.ServerURL != nil {
			serverURL = *patch.ServerURL
		}
		if patch.SecretKey != nil {
			secretKey = *patch.SecretKey
		}
		s.state.SetRemote(serverURL, secretKey)
	}

	return res
}

func (s *syncService) DeleteServerData(ctx context.Context) models.OperationResult {
	if !s.state.IsConfigured() {
		return models.OperationResult{Status: models.StatusError, Message: app.MsgSyncNotConfigured}
	}

	s.acquire(true)
	defer s.release()

	serverURL, secretKey := s.state.Remote()
	res := s.operations.DeleteServerData(ctx, serverURL, secretKey)
	if !res.OK() {
		return res
	}

	s.state.ResetVersion()
	s.state.MarkLocalChanges()
	s.persistState(ctx)

	s.logger.Info().Str("func", "syncService.DeleteServerData").Msg("server data deleted, local version reset")
	return res
}

func (s *syncService) Close() {
	s.state.Cleanup()
}
