package repository

import (
	"context"
	"testing"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepoRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile("u1",
		testutil.WithGoal("become a senior engineer", domain.GoalLongTerm, 8),
		testutil.WithInterests("data science"),
		testutil.WithStruggle(domain.ChallengeTransition, "not sure how to switch", 0.5),
	)
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Software Engineer", got.Personal.CurrentRole)
	assert.Len(t, got.Career.Goals, 1)
	assert.Equal(t, []string{"data science"}, got.Career.Interests)
	assert.Len(t, got.Skills.Current, 2)
	require.Len(t, got.Career.Struggles, 1)
	assert.Equal(t, domain.ChallengeTransition, got.Career.Struggles[0].Type)
}

func TestProfileRepoGetDropsUnknownStruggleTypes(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile("u1",
		testutil.WithStruggle(domain.ChallengeDirection, "where to next", 0.5),
	)
	p.Career.Struggles = append(p.Career.Struggles, domain.Challenge{
		Type:        domain.ChallengeType("astral_projection"),
		Description: "from an older document",
		Severity:    0.9,
	})
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Career.Struggles, 1)
	assert.Equal(t, domain.ChallengeDirection, got.Career.Struggles[0].Type)
}

func TestProfileRepoGetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)

	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepoUpsertReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile("u1")
	require.NoError(t, repo.Upsert(ctx, p))

	p.Personal.CurrentRole = "Staff Engineer"
	p.Progress.CompletedActions = []string{"a1"}
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Personal.CurrentRole)
	assert.Equal(t, []string{"a1"}, got.Progress.CompletedActions)
}
