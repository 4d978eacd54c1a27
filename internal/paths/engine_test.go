package paths

import (
	"strings"
	"testing"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(knowledge.MustLoad(), &domain.SequenceIDs{Prefix: "path"})
}

func endsWithTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func TestGeneratePathsNeverEmpty(t *testing.T) {
	e := newEngine(t)

	profiles := []*domain.UserProfile{
		nil,
		{},
		{UserID: "u1", Career: domain.CareerInfo{Interests: []string{"zzzz"}}},
		{UserID: "u2", Career: domain.CareerInfo{Interests: []string{"data", "coding"}}},
	}
	for i, p := range profiles {
		got := e.GeneratePaths(p)
		require.NotEmpty(t, got, "profile %d", i)
		for _, path := range got {
			assert.NotEmpty(t, path.Reasoning)
			assert.True(t, endsWithTerminalPunctuation(path.Reasoning), "reasoning %q", path.Reasoning)
			assert.GreaterOrEqual(t, path.FitScore, 0.0)
			assert.LessOrEqual(t, path.FitScore, 1.0)
		}
	}
}

func TestGeneratePathsDefaultWhenNothingMatches(t *testing.T) {
	e := newEngine(t)
	got := e.GeneratePaths(&domain.UserProfile{})
	require.Len(t, got, 1)
	assert.Equal(t, "General Career Development", got[0].Title)
	assert.InDelta(t, 0.5, got[0].FitScore, 1e-9)
}

func TestGeneratePathsSortedByFit(t *testing.T) {
	e := newEngine(t)
	p := &domain.UserProfile{
		Personal: domain.PersonalInfo{CurrentRole: "Developer", YearsOfExperience: 4, Industry: "technology"},
		Career:   domain.CareerInfo{Interests: []string{"data", "coding", "machine learning"}},
		Skills: domain.SkillSet{Current: []domain.Skill{
			{Name: "Python", Level: 6}, {Name: "SQL", Level: 5},
		}},
	}
	got := e.GeneratePaths(p)
	require.Greater(t, len(got), 1)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].FitScore, got[i].FitScore)
	}
}

func TestSeniorTrackScenario(t *testing.T) {
	e := newEngine(t)
	p := &domain.UserProfile{
		Personal: domain.PersonalInfo{CurrentRole: "Junior Developer"},
		Career: domain.CareerInfo{Goals: []domain.Goal{
			{ID: "g1", Description: "become senior engineer", Type: domain.GoalLongTerm, Priority: 8},
		}},
		Skills: domain.SkillSet{Current: []domain.Skill{{Name: "JavaScript", Level: 6}}},
	}

	got := e.GeneratePaths(p)
	require.NotEmpty(t, got)

	var senior *domain.CareerPath
	for i := range got {
		if got[i].Title == "Senior Junior Developer" {
			senior = &got[i]
		}
	}
	require.NotNil(t, senior, "current role must yield a senior candidate")
	assert.Greater(t, senior.FitScore, 0.0)
	assert.Less(t, senior.FitScore, 1.0)
}

func TestMeanTransitionMonths(t *testing.T) {
	months, ok := MeanTransitionMonths("6-12 months")
	assert.True(t, ok)
	assert.InDelta(t, 9.0, months, 1e-9)

	_, ok = MeanTransitionMonths("soon")
	assert.False(t, ok)
}

func TestIdentifyTradeOffs(t *testing.T) {
	list := []domain.CareerPath{
		{Title: "Data Analyst", Reasoning: "Fits well.", FitScore: 0.8, TimeToTransition: "4-8 months", GrowthPotential: 0.8},
		{Title: "Data Scientist", Reasoning: "Also fits.", FitScore: 0.7, TimeToTransition: "9-18 months", GrowthPotential: 0.9},
	}
	got := IdentifyTradeOffs(list)
	require.Len(t, got, 2)

	assert.Contains(t, got[0].Reasoning, "Best overall fit")
	assert.Contains(t, got[0].Reasoning, "Fastest of these")
	assert.Contains(t, got[0].Reasoning, "Data Scientist offers more long-term growth.")
	assert.Contains(t, got[1].Reasoning, "Data Analyst scores a better overall fit.")
	assert.Contains(t, got[1].Reasoning, "Highest long-term growth potential.")

	// Input reasonings are not mutated.
	assert.Equal(t, "Fits well.", list[0].Reasoning)

	single := IdentifyTradeOffs(list[:1])
	assert.Equal(t, "Fits well.", single[0].Reasoning)
}
