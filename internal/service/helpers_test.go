package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmallard/compass/internal/actions"
	"github.com/jmallard/compass/internal/conversation"
	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/growth"
	"github.com/jmallard/compass/internal/inrole"
	"github.com/jmallard/compass/internal/intent"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/jmallard/compass/internal/paths"
	"github.com/jmallard/compass/internal/repository"
	"github.com/jmallard/compass/internal/skills"
	"github.com/jmallard/compass/internal/testutil"
	"github.com/jmallard/compass/internal/transition"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestEngines(clock domain.Clock) Engines {
	base := knowledge.MustLoad()
	ids := &domain.SequenceIDs{Prefix: "id"}
	return Engines{
		Paths:      paths.NewEngine(base, ids),
		Skills:     skills.NewRecommender(base),
		Actions:    actions.NewGenerator(ids, clock),
		Growth:     growth.NewBuilder(ids, clock),
		Transition: transition.NewAdvisor(base),
		InRole:     inrole.NewAdvisor(),
	}
}

// newTestCoach builds a coach over a real in-memory store.
func newTestCoach(t *testing.T) (CoachService, Store) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := NewSQLiteStore(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteConversationRepo(database),
		repository.NewSQLiteProgressRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)
	return newCoachOver(store), store
}

func newCoachOver(store Store) CoachService {
	clock := domain.FixedClock{T: testNow}
	cfg := conversation.DefaultConfig()
	manager := conversation.NewManager(cfg, conversation.NewMemorySessionStore(),
		&domain.SequenceIDs{Prefix: "sess"}, clock)
	return NewCoachService(store, manager, conversation.NewFormatter(),
		intent.NewRecognizer(knowledge.MustLoad()), newTestEngines(clock), cfg, clock)
}

// failingStore rejects every call.
type failingStore struct{}

var errStore = errors.New("storage offline")

func (failingStore) GetUserProfile(context.Context, string) (*domain.UserProfile, error) {
	return nil, errStore
}
func (failingStore) SaveUserProfile(context.Context, *domain.UserProfile) error { return errStore }
func (failingStore) GetConversationHistory(context.Context, string) ([]domain.Message, error) {
	return nil, errStore
}
func (failingStore) SaveConversation(context.Context, string, []domain.Message) error {
	return errStore
}
func (failingStore) TrackActionCompletion(context.Context, string, string) error { return errStore }
func (failingStore) GetProgressHistory(context.Context, string) ([]domain.ProgressEvent, error) {
	return nil, errStore
}
func (failingStore) AssociateSessionWithUser(context.Context, string, string) error {
	return errStore
}
