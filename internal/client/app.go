// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/internal/tui"
	"github.com/onda-planner/onda-sync/models"
)

// FlushTimeout bounds the final upload of pending changes on exit.
const FlushTimeout = 10 * time.Second

type App struct {
	sync   service.SyncService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil {
		return nil, ErrNoSyncService
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		sync:   services.SyncService,
		ui:     ui,
		logger: logger,
	}, nil
}

// Run initializes sync, blocks in the UI and shuts the sync engine down when
// the UI returns. Quitting with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "*App.Run").Logger()

	if a.sync.Initialize(ctx) {
		log.Info().Msg("sync enabled")
	} else {
		log.Info().Msg("sync disabled")
	}
	defer a.sync.Close()

	err := a.ui.Run(ctx)
	a.flush(ctx)

	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// flush uploads changes still waiting for the debounce timer.
func (a *App) flush(ctx context.Context) {
	status := a.sync.GetStatus()
	if !status.Enabled || !status.HasLocalChanges {
		return
	}

	a.sync.CancelDebouncedSync()

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FlushTimeout)
	defer cancel()

	res := a.sync.Sync(flushCtx, true)
	if res.Status != models.StatusSuccess {
		a.logger.Warn().Str("func", "*App.flush").Str("message", res.Message).Msg("pending changes were not uploaded")
		return
	}
	a.logger.Info().Str("func", "*App.flush").Int64("version", res.Version).Msg("pending changes uploaded")
}
