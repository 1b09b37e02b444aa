// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/models"
)

type syncConfigManager struct {
	settings *settingsDocument
	logger   *logger.Logger
}

// newSyncConfigManager constructs a SyncConfigManager over the shared
// settings document.
func newSyncConfigManager(settings *settingsDocument, logger *logger.Logger) SyncConfigManager {
	return &syncConfigManager{settings: settings, logger: logger}
}

func (m *syncConfigManager) GetSyncConfig(ctx context.Context) *models.SyncConfig {
	fields, found, err := m.settings.read(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "syncConfigManager.GetSyncConfig").Msg("failed to read settings")
		return nil
	}
	if !found {
		return nil
	}

	raw, ok := fields["sync"]
	if !ok || string(raw) == "null" {
		return nil
	}

	var cfg models.SyncConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		m.logger.Err(err).Str("func", "syncConfigManager.GetSyncConfig").Msg("failed to decode sync config")
		return nil
	}

	return &cfg
}

func (m *syncConfigManager) SaveSyncConfig(ctx context.Context, patch models.SyncConfigPatch, version int64, lastSync *time.Time) models.OperationResult {
	err := m.settings.update(ctx, func(fields map[string]json.RawMessage) error {
		var current models.SyncConfig
		if raw, ok := fields["sync"]; ok && string(raw) != "null" {
			if err := json.Unmarshal(raw, &current); err != nil {
				return err
			}
		}

		next := patch.Apply(current)
		next.Version = version
		next.LastSync = lastSync

		raw, err := json.Marshal(next)
		if err != nil {
			return err
		}
		fields["sync"] = raw
		return nil
	})
	if err != nil {
		m.logger.Err(err).Str("func", "syncConfigManager.SaveSyncConfig").Msg("failed to save sync config")
		return models.OperationResult{Status: models.StatusError, Message: err.Error()}
	}

	return models.OperationResult{Status: models.StatusSuccess, Message: app.MsgSyncConfigSaved}
}
