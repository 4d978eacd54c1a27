package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
)

// SQLiteConversationRepo persists sessions and their messages.
type SQLiteConversationRepo struct {
	db db.DBTX
}

func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

func (r *SQLiteConversationRepo) CreateSession(ctx context.Context, sessionID, userID string) error {
	query := `INSERT OR IGNORE INTO sessions (id, user_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, nullableString(userID), nowUTC()); err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

func (r *SQLiteConversationRepo) AssociateUser(ctx context.Context, sessionID, userID string) error {
	query := `UPDATE sessions SET user_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, userID, sessionID)
	if err != nil {
		return fmt.Errorf("associating session with user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("associating session with user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteConversationRepo) AppendMessages(ctx context.Context, sessionID string, msgs []domain.Message) error {
	query := `INSERT INTO messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`
	for _, m := range msgs {
		ts := m.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		if _, err := r.db.ExecContext(ctx, query,
			sessionID, string(m.Role), m.Content, ts.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting message: %w", err)
		}
	}
	return nil
}

func (r *SQLiteConversationRepo) HistoryByUser(ctx context.Context, userID string) ([]domain.Message, error) {
	query := `SELECT m.id, m.role, m.content, m.created_at
		FROM messages m
		JOIN sessions s ON m.session_id = s.id
		WHERE s.user_id = ?
		ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing messages by user: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *SQLiteConversationRepo) HistoryBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	query := `SELECT id, role, content, created_at FROM messages
		WHERE session_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages by session: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var out []domain.Message
	for rows.Next() {
		var (
			id        int64
			role      string
			content   string
			createdAt string
		)
		if err := rows.Scan(&id, &role, &content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		ts, err := parseTime(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Message{
			ID:        strconv.FormatInt(id, 10),
			Role:      domain.MessageRole(role),
			Content:   content,
			Timestamp: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return out, nil
}

// nullableString maps "" to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
