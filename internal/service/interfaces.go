// Package service orchestrates the recommendation engines behind one
// conversational entry point.
package service

import (
	"context"

	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/domain"
)

// Store is the persistence collaborator. Any call may fail; the service
// degrades instead of propagating storage errors to the user.
type Store interface {
	// GetUserProfile returns (nil, nil) for an unknown user.
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	SaveUserProfile(ctx context.Context, p *domain.UserProfile) error
	GetConversationHistory(ctx context.Context, userID string) ([]domain.Message, error)
	SaveConversation(ctx context.Context, sessionID string, msgs []domain.Message) error
	TrackActionCompletion(ctx context.Context, userID, actionID string) error
	GetProgressHistory(ctx context.Context, userID string) ([]domain.ProgressEvent, error)
	AssociateSessionWithUser(ctx context.Context, sessionID, userID string) error
}

// CoachService is the conversational core's caller-facing surface.
type CoachService interface {
	ProcessRequest(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error)
	CompleteAction(ctx context.Context, userID, actionID string) (string, error)
	EndSession(ctx context.Context, sessionID string) error
}
