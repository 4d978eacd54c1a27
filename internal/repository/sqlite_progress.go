package repository

import (
	"context"
	"fmt"

	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
)

// SQLiteProgressRepo records action completions as an append-only event
// log, one row per completion.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) TrackCompletion(ctx context.Context, userID, actionID string) error {
	query := `INSERT INTO progress_events (user_id, action_id, completed_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, userID, actionID, nowUTC()); err != nil {
		return fmt.Errorf("inserting progress event: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) History(ctx context.Context, userID string) ([]domain.ProgressEvent, error) {
	query := `SELECT action_id, completed_at FROM progress_events
		WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing progress events: %w", err)
	}
	defer rows.Close()

	var out []domain.ProgressEvent
	for rows.Next() {
		var (
			actionID    string
			completedAt string
		)
		if err := rows.Scan(&actionID, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		ts, err := parseTime(completedAt, "completed_at")
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ProgressEvent{ActionID: actionID, CompletedAt: ts})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress events: %w", err)
	}
	return out, nil
}
