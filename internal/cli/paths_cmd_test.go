package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallard/compass/internal/domain"
)

func TestPathsCommandWithProfile(t *testing.T) {
	store := &stubStore{profiles: map[string]*domain.UserProfile{
		"u1": {
			UserID: "u1",
			Personal: domain.PersonalInfo{
				CurrentRole:       "Software Engineer",
				YearsOfExperience: 4,
			},
			Career: domain.CareerInfo{Interests: []string{"data"}},
			Skills: domain.SkillSet{Current: []domain.Skill{{Name: "SQL", Level: 4}}},
		},
	}}
	app := newTestApp(&stubCoach{}, store)

	out, err := execute(app, "paths", "--user", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "CAREER PATHS")
	assert.Contains(t, out, "% fit")
	assert.NotContains(t, out, "general suggestions")
}

func TestPathsCommandWithoutProfile(t *testing.T) {
	app := newTestApp(&stubCoach{}, nil)

	out, err := execute(app, "paths", "--user", "ghost")
	require.NoError(t, err)
	// Default path still renders, with the unranked disclaimer.
	assert.Contains(t, out, "CAREER PATHS")
	assert.Contains(t, out, "general suggestions")
}

func TestActionsCompleteCommand(t *testing.T) {
	coach := &stubCoach{ack: "Great progress on that step."}
	app := newTestApp(coach, nil)

	out, err := execute(app, "actions", "complete", "--user", "u1", "--action", "step-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Great progress")
	require.Len(t, coach.completed, 1)
	assert.Equal(t, [2]string{"u1", "step-3"}, coach.completed[0])
}
