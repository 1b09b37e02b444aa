// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal sync settings screen of the planner
// client.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/models"
)

// ErrUserQuit is returned by Run when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services       *service.ClientServices
	buildInfo      models.AppBuildInfo
	statusInterval time.Duration
	logger         *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, statusInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		statusInterval: statusInterval,
		logger:         logger,
	}
}

// Run shows the sync settings screen until the user leaves it or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	screen := newSyncScreenModel(ctx, t.services.SyncService, t.statusInterval)
	root := NewRootModel(screen, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running sync screen: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Str("func", "*TUI.Run").Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
