package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type quizRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *quizRepo) AppendAttempt(ctx context.Context, a *QuizAttempt, maxAttempts int) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quiz_attempts WHERE quiz_id = ?`, a.QuizID,
	).Scan(&count); err != nil {
		return fmt.Errorf("count attempts: %w", err)
	}
	if maxAttempts > 0 && count >= maxAttempts {
		return ErrAttemptLimit
	}

	seqNum, err := r.seq.Next(ctx, tx)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO quiz_attempts (
			sequence, quiz_id, attempt, started_at, submitted_at, answers,
			correct, total, percent, passed, timed_out
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, a.QuizID, count+1, unixMilli(a.StartedAt), unixMilli(a.SubmittedAt), string(answers),
		a.Correct, a.Total, a.Percent, a.Passed, a.TimedOut,
	)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("quiz attempt id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	a.ID = int(id)
	a.Sequence = seqNum
	a.Attempt = count + 1
	return nil
}

func (r *quizRepo) Attempts(ctx context.Context, quizID string) ([]QuizAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sequence, quiz_id, attempt, started_at, submitted_at, answers,
			correct, total, percent, passed, timed_out
		FROM quiz_attempts WHERE quiz_id = ? ORDER BY attempt`, quizID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []QuizAttempt
	for rows.Next() {
		var (
			a                  QuizAttempt
			started, submitted int64
			answers            string
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &a.QuizID, &a.Attempt, &started, &submitted, &answers,
			&a.Correct, &a.Total, &a.Percent, &a.Passed, &a.TimedOut); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &a.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		a.StartedAt = fromUnixMilli(started)
		a.SubmittedAt = fromUnixMilli(submitted)
		out = append(out, a)
	}
	return out, rows.Err()
}
