package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type progressRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *progressRepo) Upsert(ctx context.Context, rec ProgressRecord) error {
	var score sql.NullInt64
	if rec.Score != nil {
		score = sql.NullInt64{Int64: int64(*rec.Score), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO module_progress (module_id, status, progress, score, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (module_id) DO UPDATE SET
			status = excluded.status,
			progress = excluded.progress,
			score = excluded.score,
			updated_at = excluded.updated_at`,
		rec.ModuleID, rec.Status, rec.Progress, score, unixMilli(r.now()),
	)
	if err != nil {
		return fmt.Errorf("upsert progress for %s: %w", rec.ModuleID, err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, moduleID string) (*ProgressRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT module_id, status, progress, score, updated_at FROM module_progress WHERE module_id = ?`,
		moduleID,
	)
	rec, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress for %s: %w", moduleID, err)
	}
	return rec, nil
}

func (r *progressRepo) All(ctx context.Context) ([]ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT module_id, status, progress, score, updated_at FROM module_progress ORDER BY module_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []ProgressRecord
	for rows.Next() {
		rec, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM module_progress`); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(s scanner) (*ProgressRecord, error) {
	var (
		rec     ProgressRecord
		score   sql.NullInt64
		updated int64
	)
	if err := s.Scan(&rec.ModuleID, &rec.Status, &rec.Progress, &score, &updated); err != nil {
		return nil, err
	}
	if score.Valid {
		v := int(score.Int64)
		rec.Score = &v
	}
	rec.UpdatedAt = fromUnixMilli(updated)
	return &rec, nil
}
