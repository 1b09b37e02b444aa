// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const syncDataTable = "sync_data"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildGetDatasetQuery(ownerKey string) (string, []any, error) {
	return psql.
		Select("content", "content_hash", "version", "last_sync", "created_at", "updated_at").
		From(syncDataTable).
		Where(sq.Eq{"owner_key": ownerKey}).
		ToSql()
}

// buildSaveDatasetQuery inserts version 1 or, on conflict, bumps the stored
// version in the same statement. The row lock taken by the upsert makes two
// concurrent pushes produce consecutive versions.
func buildSaveDatasetQuery(ownerKey string, content []byte, contentHash string, now time.Time) (string, []any, error) {
	return psql.
		Insert(syncDataTable).
		Columns("owner_key", "content", "content_hash", "version", "last_sync", "created_at", "updated_at").
		Values(ownerKey, string(content), contentHash, 1, now, now, now).
		Suffix(`ON CONFLICT (owner_key) DO UPDATE SET
			content = EXCLUDED.content,
			content_hash = EXCLUDED.content_hash,
			version = sync_data.version + 1,
			last_sync = EXCLUDED.last_sync,
			updated_at = EXCLUDED.updated_at
		RETURNING version, created_at`).
		ToSql()
}

func buildDeleteDatasetQuery(ownerKey string) (string, []any, error) {
	return psql.
		Delete(syncDataTable).
		Where(sq.Eq{"owner_key": ownerKey}).
		ToSql()
}
