package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Timestamps are stored as UTC unix milliseconds.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS module_progress (
		module_id  TEXT PRIMARY KEY,
		status     TEXT NOT NULL,
		progress   INTEGER NOT NULL CHECK (progress BETWEEN 0 AND 100),
		score      INTEGER CHECK (score IS NULL OR score BETWEEN 0 AND 100),
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL DEFAULT '',
		model         TEXT NOT NULL DEFAULT '',
		purpose       TEXT NOT NULL DEFAULT '',
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE TABLE IF NOT EXISTS summary_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		summary_id    TEXT NOT NULL UNIQUE,
		module_id     TEXT NOT NULL DEFAULT '',
		input_chars   INTEGER NOT NULL,
		summary       TEXT NOT NULL DEFAULT '',
		model         TEXT NOT NULL DEFAULT '',
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_summary_events_module ON summary_events (module_id)`,
	`CREATE TABLE IF NOT EXISTS quiz_attempts (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence     INTEGER NOT NULL UNIQUE,
		quiz_id      TEXT NOT NULL,
		attempt      INTEGER NOT NULL,
		started_at   INTEGER NOT NULL,
		submitted_at INTEGER NOT NULL,
		answers      TEXT NOT NULL,
		correct      INTEGER NOT NULL,
		total        INTEGER NOT NULL,
		percent      REAL NOT NULL,
		passed       INTEGER NOT NULL,
		timed_out    INTEGER NOT NULL,
		UNIQUE (quiz_id, attempt)
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
