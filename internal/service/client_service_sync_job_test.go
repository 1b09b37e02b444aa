// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestAutoSyncJob_Start_CallsCallback(t *testing.T) {
	var calls atomic.Int64
	var job autoSyncJob

	job.Start(context.Background(), func(context.Context) { calls.Add(1) }, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestAutoSyncJob_Stop_StopsGoroutine(t *testing.T) {
	var calls atomic.Int64
	var job autoSyncJob

	job.Start(context.Background(), func(context.Context) { calls.Add(1) }, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load())
	assert.False(t, job.Running())
}

func TestAutoSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	var job autoSyncJob
	assert.NotPanics(t, func() { job.Stop() })
}

func TestAutoSyncJob_Restart_ReplacesTicker(t *testing.T) {
	var first, second atomic.Int64
	var job autoSyncJob

	job.Start(context.Background(), func(context.Context) { first.Add(1) }, 10*time.Millisecond)
	job.Start(context.Background(), func(context.Context) { second.Add(1) }, 10*time.Millisecond)
	firstAfterRestart := first.Load()
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.Equal(t, firstAfterRestart, first.Load())
	assert.GreaterOrEqual(t, second.Load(), int64(2))
}

func TestAutoSyncJob_ContextCancel_StopsGoroutine(t *testing.T) {
	var calls atomic.Int64
	var job autoSyncJob
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, func(context.Context) { calls.Add(1) }, 10*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)
	before := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, before, calls.Load())
	job.Stop()
}
