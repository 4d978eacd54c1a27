package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/repository"
	"github.com/jmallard/compass/internal/testutil"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteStore(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteConversationRepo(database),
		repository.NewSQLiteProgressRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)
}

func TestGetUserProfileUnknownIsNil(t *testing.T) {
	store := newStore(t)

	p, err := store.GetUserProfile(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveAndGetUserProfile(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserProfile(ctx, testutil.NewTestProfile("u1")))

	p, err := store.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "u1", p.UserID)
}

func TestTrackActionCompletionUpdatesProfile(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserProfile(ctx, testutil.NewTestProfile("u1")))
	require.NoError(t, store.TrackActionCompletion(ctx, "u1", "step-1"))

	p, err := store.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, p.HasCompletedAction("step-1"))

	events, err := store.GetProgressHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "step-1", events[0].ActionID)
}

func TestTrackActionCompletionUnknownUser(t *testing.T) {
	store := newStore(t)

	err := store.TrackActionCompletion(context.Background(), "ghost", "step-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSaveConversationRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	store := NewSQLiteStore(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteConversationRepo(database),
		repository.NewSQLiteProgressRepo(database),
		// Session insert is exec 1; the message insert that follows fails.
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom},
	)

	err := store.SaveConversation(context.Background(), "sess-1", []domain.Message{
		{Role: domain.RoleUser, Content: "hello", Timestamp: time.Now().UTC()},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	// The session row from exec 1 must not survive the rollback.
	var count int
	row := database.QueryRow(`SELECT COUNT(*) FROM sessions WHERE id = ?`, "sess-1")
	require.NoError(t, row.Scan(&count))
	assert.Zero(t, count)
}
