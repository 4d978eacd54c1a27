package cli

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/jmallard/compass/internal/paths"
)

// stubCoach records calls and replies with a canned response per turn.
type stubCoach struct {
	requests      []contract.ChatRequest
	endedSessions []string
	completed     [][2]string
	reply         func(req contract.ChatRequest) (*contract.ChatResponse, error)
	ack           string
	completeErr   error
}

func (s *stubCoach) ProcessRequest(_ context.Context, req contract.ChatRequest) (*contract.ChatResponse, error) {
	s.requests = append(s.requests, req)
	if s.reply != nil {
		return s.reply(req)
	}
	return &contract.ChatResponse{
		Content:   fmt.Sprintf("Reply to: %s", req.Message),
		SessionID: "sess-1",
		Timestamp: time.Now(),
	}, nil
}

func (s *stubCoach) CompleteAction(_ context.Context, userID, actionID string) (string, error) {
	s.completed = append(s.completed, [2]string{userID, actionID})
	if s.completeErr != nil {
		return "", s.completeErr
	}
	if s.ack != "" {
		return s.ack, nil
	}
	return "Nice work.", nil
}

func (s *stubCoach) EndSession(_ context.Context, sessionID string) error {
	s.endedSessions = append(s.endedSessions, sessionID)
	return nil
}

// stubStore serves profiles from a map and records saves.
type stubStore struct {
	profiles map[string]*domain.UserProfile
	saved    []*domain.UserProfile
	err      error
}

func (s *stubStore) GetUserProfile(_ context.Context, userID string) (*domain.UserProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profiles[userID], nil
}

func (s *stubStore) SaveUserProfile(_ context.Context, p *domain.UserProfile) error {
	s.saved = append(s.saved, p)
	return s.err
}

func (s *stubStore) GetConversationHistory(context.Context, string) ([]domain.Message, error) {
	return nil, nil
}

func (s *stubStore) SaveConversation(context.Context, string, []domain.Message) error {
	return nil
}

func (s *stubStore) TrackActionCompletion(context.Context, string, string) error { return nil }

func (s *stubStore) GetProgressHistory(context.Context, string) ([]domain.ProgressEvent, error) {
	return nil, nil
}

func (s *stubStore) AssociateSessionWithUser(context.Context, string, string) error { return nil }

func newTestApp(coach *stubCoach, store *stubStore) *App {
	if store == nil {
		store = &stubStore{profiles: map[string]*domain.UserProfile{}}
	}
	return &App{
		Coach: coach,
		Store: store,
		Paths: paths.NewEngine(knowledge.MustLoad(), &domain.SequenceIDs{Prefix: "path"}),
	}
}

// execute runs the root command with args and returns combined output.
func execute(app *App, args ...string) (string, error) {
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
