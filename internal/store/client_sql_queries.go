// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (
			id,
			token,
			user_json,
			expires_at
		) VALUES (1, $1, $2, $3)
		ON CONFLICT(id) DO UPDATE SET
			token      = excluded.token,
			user_json  = excluded.user_json,
			expires_at = excluded.expires_at;`

	getSession = `
		SELECT
			token,
			user_json,
			expires_at
		FROM session
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`

	getPreference = `
		SELECT value
		FROM preferences
		WHERE key = $1;`

	setPreference = `
		INSERT INTO preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value;`

	deletePreference = `
		DELETE FROM preferences
		WHERE key = $1;`

	upsertHistoryEntry = `
		INSERT INTO history (
			entry_id,
			entry_type,
			name,
			icon,
			subject_name,
			topic_name,
			papers,
			visit_count,
			last_visited
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8)
		ON CONFLICT(entry_id, entry_type) DO UPDATE SET
			visit_count  = visit_count + 1,
			last_visited = excluded.last_visited;`

	trimHistoryToCap = `
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id
			FROM history
			ORDER BY id DESC
			LIMIT $1
		);`

	getAllHistoryEntries = `
		SELECT
			entry_id,
			entry_type,
			name,
			icon,
			subject_name,
			topic_name,
			papers,
			visit_count,
			last_visited
		FROM history
		ORDER BY id DESC;`

	clearHistoryEntries = `
		DELETE FROM history;`

	addActiveTime = `
		INSERT INTO daily_usage (day, active_ms)
		VALUES ($1, $2)
		ON CONFLICT(day) DO UPDATE SET
			active_ms = active_ms + excluded.active_ms;`

	getAllUsage = `
		SELECT
			day,
			active_ms
		FROM daily_usage;`

	saveNote = `
		INSERT INTO notes (
			id,
			subject_key,
			title,
			body,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	getSingleNote = `
		SELECT
			id,
			subject_key,
			title,
			body,
			created_at,
			updated_at
		FROM notes
		WHERE id = $1;`

	getAllNotes = `
		SELECT
			id,
			subject_key,
			title,
			body,
			created_at,
			updated_at
		FROM notes
		ORDER BY updated_at DESC;`

	updateNote = `
		UPDATE notes SET
			subject_key = $1,
			title       = $2,
			body        = $3,
			updated_at  = $4
		WHERE id = $5;`

	deleteNote = `
		DELETE FROM notes
		WHERE id = $1;`
)
