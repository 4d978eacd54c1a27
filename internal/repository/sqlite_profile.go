package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
)

// SQLiteProfileRepo stores each profile as a single JSON document keyed
// by user id. The profile is read and written whole, so a document
// column avoids a wide, churn-prone table.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT document FROM user_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("decoding user profile document: %w", err)
	}
	p.UserID = userID

	// Stored documents may predate the current challenge taxonomy;
	// drop struggles whose type is no longer recognized.
	kept := p.Career.Struggles[:0]
	for _, c := range p.Career.Struggles {
		if domain.ValidChallengeTypes[string(c.Type)] {
			kept = append(kept, c)
		}
	}
	p.Career.Struggles = kept

	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding user profile document: %w", err)
	}

	query := `INSERT INTO user_profiles (user_id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, p.UserID, string(doc), nowUTC()); err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
