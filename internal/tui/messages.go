// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/onda-planner/onda-sync/models"

type statusTickMsg struct{}

type saveDoneMsg struct {
	result    models.OperationResult
	enabled   bool
	activated bool
}

type testDoneMsg struct {
	result models.TestConnectionResult
}

type syncDoneMsg struct {
	result models.SyncResult
}

type deleteDoneMsg struct {
	result models.OperationResult
}
