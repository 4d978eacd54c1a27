package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/repository"
)

// SQLiteStore implements Store over the SQLite repositories. Multi-write
// operations run inside a unit of work so a partial failure leaves no
// trace.
type SQLiteStore struct {
	profiles      repository.ProfileRepo
	conversations repository.ConversationRepo
	progress      repository.ProgressRepo
	uow           db.UnitOfWork
}

func NewSQLiteStore(
	profiles repository.ProfileRepo,
	conversations repository.ConversationRepo,
	progress repository.ProgressRepo,
	uow db.UnitOfWork,
) *SQLiteStore {
	return &SQLiteStore{
		profiles:      profiles,
		conversations: conversations,
		progress:      progress,
		uow:           uow,
	}
}

func (s *SQLiteStore) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *SQLiteStore) SaveUserProfile(ctx context.Context, p *domain.UserProfile) error {
	return s.profiles.Upsert(ctx, p)
}

func (s *SQLiteStore) GetConversationHistory(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.conversations.HistoryByUser(ctx, userID)
}

// SaveConversation writes the session row and its new messages
// atomically.
func (s *SQLiteStore) SaveConversation(ctx context.Context, sessionID string, msgs []domain.Message) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteConversationRepo(tx)
		if err := repo.CreateSession(ctx, sessionID, ""); err != nil {
			return err
		}
		return repo.AppendMessages(ctx, sessionID, msgs)
	})
}

// TrackActionCompletion appends a progress event and folds the action id
// into the profile document in one transaction.
func (s *SQLiteStore) TrackActionCompletion(ctx context.Context, userID, actionID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		progress := repository.NewSQLiteProgressRepo(tx)
		if err := progress.TrackCompletion(ctx, userID, actionID); err != nil {
			return err
		}

		profiles := repository.NewSQLiteProfileRepo(tx)
		p, err := profiles.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("tracking completion for unknown user %s: %w", userID, err)
			}
			return err
		}
		if !p.HasCompletedAction(actionID) {
			p.Progress.CompletedActions = append(p.Progress.CompletedActions, actionID)
		}
		p.Touch(time.Now().UTC())
		return profiles.Upsert(ctx, p)
	})
}

func (s *SQLiteStore) GetProgressHistory(ctx context.Context, userID string) ([]domain.ProgressEvent, error) {
	return s.progress.History(ctx, userID)
}

func (s *SQLiteStore) AssociateSessionWithUser(ctx context.Context, sessionID, userID string) error {
	if err := s.conversations.CreateSession(ctx, sessionID, userID); err != nil {
		return err
	}
	return s.conversations.AssociateUser(ctx, sessionID, userID)
}
