// Package repository persists user profiles, conversations, and progress
// history in SQLite.
package repository

import (
	"context"
	"errors"

	"github.com/jmallard/compass/internal/domain"
)

// ErrNotFound is wrapped by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type ConversationRepo interface {
	CreateSession(ctx context.Context, sessionID string, userID string) error
	AssociateUser(ctx context.Context, sessionID, userID string) error
	AppendMessages(ctx context.Context, sessionID string, msgs []domain.Message) error
	HistoryByUser(ctx context.Context, userID string) ([]domain.Message, error)
	HistoryBySession(ctx context.Context, sessionID string) ([]domain.Message, error)
}

type ProgressRepo interface {
	TrackCompletion(ctx context.Context, userID, actionID string) error
	History(ctx context.Context, userID string) ([]domain.ProgressEvent, error)
}
