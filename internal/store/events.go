package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo on raw SQL and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx, r.db)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO llm_request_events (
			sequence, timestamp, provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, unixMilli(r.now()), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

const llmEventColumns = `id, sequence, timestamp, provider, model, purpose, input_tokens,
	output_tokens, latency_ms, success, error_message, request_body, response_body`

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	where, args := opts.where()
	if opts.Purpose != "" {
		where = append(where, "purpose = ?")
		args = append(args, opts.Purpose)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+llmEventColumns+" FROM llm_request_events"+whereClause(where)+" ORDER BY sequence DESC"+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+llmEventColumns+" FROM llm_request_events WHERE id = ?", id)
	e, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return e, nil
}

func scanLLMEvent(s scanner) (*LLMRequestEvent, error) {
	var (
		e  LLMRequestEvent
		ts int64
	)
	err := s.Scan(&e.ID, &e.Sequence, &ts, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if err != nil {
		return nil, err
	}
	e.Timestamp = fromUnixMilli(ts)
	return &e, nil
}

func (r *eventRepo) AppendSummary(ctx context.Context, data SummaryEventData) error {
	seqNum, err := r.seq.Next(ctx, r.db)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO summary_events (
			sequence, timestamp, summary_id, module_id, input_chars, summary,
			model, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, unixMilli(r.now()), data.SummaryID, data.ModuleID, data.InputChars,
		data.Summary, data.Model, data.Success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save summary event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySummaries(ctx context.Context, moduleID string, opts QueryOpts) ([]SummaryEvent, error) {
	where, args := opts.where()
	if moduleID != "" {
		where = append(where, "module_id = ?")
		args = append(args, moduleID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sequence, timestamp, summary_id, module_id, input_chars, summary,
			model, success, error_message
		FROM summary_events`+whereClause(where)+" ORDER BY sequence DESC"+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var out []SummaryEvent
	for rows.Next() {
		var (
			e  SummaryEvent
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SummaryID, &e.ModuleID, &e.InputChars,
			&e.Summary, &e.Model, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		e.Timestamp = fromUnixMilli(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// where returns the shared sequence and timestamp conditions.
func (o QueryOpts) where() ([]string, []any) {
	var (
		conds []string
		args  []any
	)
	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, unixMilli(o.From))
	}
	if !o.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, unixMilli(o.To))
	}
	return conds, args
}

func (o QueryOpts) limit() string {
	if o.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", o.Limit)
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
