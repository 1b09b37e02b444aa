// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredDataset is the server-side record of one synced dataset.
type StoredDataset struct {
	// OwnerKey is derived from the client's secret key; the raw secret is
	// never stored.
	OwnerKey string

	// Content is the dataset exactly as the last push delivered it.
	Content Dataset

	// ContentHash is a hex BLAKE2b-256 digest of the stored content.
	ContentHash string

	// Version starts at 1 and grows by one on each push.
	Version int64

	LastSync  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
