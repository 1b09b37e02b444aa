// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for both sides of the sync system.
//
// On the client, [DocumentStore] is the local document database: named
// collections of JSON documents in SQLite, with whole-database export and
// all-or-nothing import used by the sync engine.
//
// On the server, [DatasetRepository] keeps one dataset per owner key, in
// PostgreSQL when a DSN is configured and in memory otherwise.
package store
