// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a local document does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrDatasetNotFound is returned when no dataset is stored for an owner
	// key.
	ErrDatasetNotFound = errors.New("dataset was not found")

	// ErrInvalidDataset is returned by ImportData when the incoming dataset
	// fails validation. Nothing is written in that case.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrStorageUnavailable wraps database failures that are classified as
	// transient (connection loss, serialization failure, deadlock).
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingDocument     = errors.New("failed to encode document")
	ErrDecodingDocument     = errors.New("failed to decode document")
)
