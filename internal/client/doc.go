// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the planner client runtime.
//
// It restores the sync engine from the stored configuration, runs the
// terminal sync screen and flushes pending local changes before exit.
package client
