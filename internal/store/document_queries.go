// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getDocument = `SELECT body, updated_at FROM documents WHERE collection = ? AND id = ?;`

	listDocuments = `SELECT id, body, updated_at FROM documents WHERE collection = ? ORDER BY id;`

	putDocument = `INSERT INTO documents (collection, id, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE
		SET body = excluded.body, updated_at = excluded.updated_at;`

	deleteDocument = `DELETE FROM documents WHERE collection = ? AND id = ?;`

	deleteCollection = `DELETE FROM documents WHERE collection = ?;`
)
