package repository

import (
	"context"
	"testing"

	"github.com/jmallard/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepoTrackAndHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.TrackCompletion(ctx, "u1", "a1"))
	require.NoError(t, repo.TrackCompletion(ctx, "u1", "a2"))
	require.NoError(t, repo.TrackCompletion(ctx, "u2", "b1"))

	got, err := repo.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ActionID)
	assert.Equal(t, "a2", got[1].ActionID)
	assert.False(t, got[0].CompletedAt.IsZero())
	assert.False(t, got[0].CompletedAt.After(got[1].CompletedAt))
}

func TestProgressRepoEmptyHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(database)

	got, err := repo.History(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}
