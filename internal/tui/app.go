// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onda-planner/onda-sync/models"
)

// RootModel hosts the active screen, handles the global ctrl+c quit and
// toggles the build info overlay.
type RootModel struct {
	current   tea.Model
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(screen tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		current:   screen,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if keyMsg.String() == "esc" {
				r.showBuildInfo = false
			}
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("onda", "", "")
	}
	return r.current.View()
}
