// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getKeyValue = `
		SELECT value
		FROM kv_entries
		WHERE namespace = ? AND key = ?;`

	putKeyValue = `
		INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (namespace, key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	removeKeyValue = `
		DELETE FROM kv_entries
		WHERE namespace = ? AND key = ?;`

	containsKeyValue = `
		SELECT EXISTS (
			SELECT 1 FROM kv_entries WHERE namespace = ? AND key = ?
		);`

	clearNamespace = `
		DELETE FROM kv_entries
		WHERE namespace = ?;`

	saveProgress = `
		INSERT INTO uncompleted_sessions (session_id, test_id, question_index, elapsed_time_millis, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET
			test_id             = excluded.test_id,
			question_index      = excluded.question_index,
			elapsed_time_millis = excluded.elapsed_time_millis,
			saved_at            = excluded.saved_at;`

	getUncompletedSessions = `
		SELECT session_id, test_id, question_index, elapsed_time_millis, saved_at
		FROM uncompleted_sessions
		ORDER BY saved_at DESC;`

	removeProgress = `
		DELETE FROM uncompleted_sessions
		WHERE session_id = ?;`

	clearProgress = `DELETE FROM uncompleted_sessions;`
)
