package actions

import (
	"testing"
	"time"

	"github.com/jmallard/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(now time.Time) *Generator {
	return NewGenerator(&domain.SequenceIDs{Prefix: "step"}, domain.FixedClock{T: now})
}

func goalN(id string, priority int, desc string) domain.Goal {
	return domain.Goal{ID: id, Description: desc, Type: domain.GoalShortTerm, Priority: priority}
}

func TestGenerateActionStepsCaps(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) // a Tuesday
	g := newGenerator(now)

	// Three active goals: the tighter cap of 2 per timeframe applies.
	goals := []domain.Goal{
		goalN("g1", 9, "learn data skills"),
		goalN("g2", 8, "build a portfolio"),
		goalN("g3", 7, "meet people in design"),
	}
	steps := g.GenerateActionSteps(&domain.UserProfile{}, goals, nil, nil)

	counts := map[domain.Timeframe]int{}
	for _, s := range steps {
		counts[s.Timeframe]++
	}
	for tf, n := range counts {
		assert.LessOrEqual(t, n, StepsPerTimeframeBusy, "timeframe %s", tf)
	}

	// Two goals: cap of 3 applies.
	steps = g.GenerateActionSteps(&domain.UserProfile{}, goals[:2], nil, nil)
	counts = map[domain.Timeframe]int{}
	for _, s := range steps {
		counts[s.Timeframe]++
	}
	for tf, n := range counts {
		assert.LessOrEqual(t, n, StepsPerTimeframe, "timeframe %s", tf)
	}
}

func TestGenerateActionStepsDueDates(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) // Tuesday, March
	g := newGenerator(now)

	steps := g.GenerateActionSteps(&domain.UserProfile{}, []domain.Goal{goalN("g1", 5, "grow")}, nil, nil)
	require.NotEmpty(t, steps)

	for _, s := range steps {
		require.NotNil(t, s.DueDate)
		switch s.Timeframe {
		case domain.TimeframeToday:
			assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC), *s.DueDate)
		case domain.TimeframeThisWeek:
			// Upcoming Sunday.
			assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC), *s.DueDate)
		case domain.TimeframeThisMonth:
			assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), *s.DueDate)
		}
	}
}

func TestGenerateActionStepsGoalPriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	g := newGenerator(now)

	early := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	goals := []domain.Goal{
		{ID: "low", Description: "someday goal", Type: domain.GoalLongTerm, Priority: 2},
		{ID: "high", Description: "urgent goal", Type: domain.GoalShortTerm, Priority: 9, TargetDate: &early},
	}
	steps := g.GenerateActionSteps(&domain.UserProfile{}, goals, nil, nil)
	require.NotEmpty(t, steps)

	// Steps for the urgent goal come first.
	assert.Contains(t, steps[0].Description, "urgent goal")
}

func TestGenerateActionStepsUsesContext(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	g := newGenerator(now)

	path := &domain.CareerPath{Title: "Data Analyst"}
	recs := []domain.SkillRecommendation{{Skill: "SQL", Priority: 0.8}}
	goals := []domain.Goal{goalN("g1", 5, "learn analytics and meet people")}

	steps := g.GenerateActionSteps(&domain.UserProfile{}, goals, path, recs)

	var sawSkill, sawPath bool
	for _, s := range steps {
		if s.Category == domain.CategoryLearning {
			sawSkill = assert.Contains(t, s.Description, "SQL") || sawSkill
		}
		if s.Category == domain.CategoryNetworking {
			sawPath = assert.Contains(t, s.Description, "Data Analyst") || sawPath
		}
	}
	assert.True(t, sawSkill)
	assert.True(t, sawPath)
}

func TestProgressAcknowledgment(t *testing.T) {
	assert.Empty(t, GenerateProgressAcknowledgment(nil, &domain.UserProfile{}))

	one := []domain.ActionStep{{Category: domain.CategoryLearning, Completed: true}}
	msg := GenerateProgressAcknowledgment(one, &domain.UserProfile{})
	assert.Contains(t, msg, "learning")

	many := []domain.ActionStep{
		{Category: domain.CategoryLearning}, {Category: domain.CategoryNetworking}, {Category: domain.CategoryReflection},
	}
	veteran := &domain.UserProfile{Progress: domain.Progress{
		CompletedActions: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
	}}
	msg = GenerateProgressAcknowledgment(many, veteran)
	assert.Contains(t, msg, "3 steps")
	assert.Contains(t, msg, "habit")
}
