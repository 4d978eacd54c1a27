package conversation

import (
	"strings"
	"testing"
	"time"

	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *contract.RecommendationSet {
	return &contract.RecommendationSet{
		CareerPaths: []domain.CareerPath{
			{Title: "Data Analyst", FitScore: 0.82, TimeToTransition: "4-8 months", Reasoning: "Your SQL skills carry over."},
			{Title: "Product Manager", FitScore: 0.6, TimeToTransition: "9-15 months", Reasoning: "Matches your interests."},
		},
		Skills: []domain.SkillRecommendation{
			{Skill: "Statistics", EstimatedTime: "4 months", Reasoning: "Core for analyst roles."},
		},
		Actions: []domain.ActionStep{
			{Description: "Write down what success looks like.", Timeframe: domain.TimeframeToday, Category: domain.CategoryReflection},
			{Description: "Reach out to one analyst.", Timeframe: domain.TimeframeThisWeek, Category: domain.CategoryNetworking},
		},
	}
}

func TestFormatPriorityOrder(t *testing.T) {
	f := NewFormatter()

	set := sampleSet()
	set.Transition = &domain.TransitionPlan{
		SourceField: "software engineering", TargetField: "data science",
		Difficulty: domain.DifficultyModerate, EstimatedDuration: "10-16 months",
		Phases: []domain.TransitionPhase{{Name: "Preparation", Duration: "5 months", Focus: "close the most urgent gaps"}},
	}
	set.GrowthPlan = &domain.GrowthPlan{
		Timeline:   "10 months",
		CareerPath: domain.CareerPath{Title: "Data Analyst"},
		Phases: []domain.Phase{{
			Name: "Foundation", Duration: "3 months",
			Objectives: []string{"Understand the work"},
			Actions:    []domain.PlanAction{{Description: "Talk to an analyst"}},
		}},
	}

	out := f.Format(set, "")
	transitionIdx := strings.Index(out, "data science")
	growthIdx := strings.Index(out, "growth plan")
	pathsIdx := strings.Index(out, "recommend considering these paths")
	skillsIdx := strings.Index(out, "Skills worth focusing on")
	actionsIdx := strings.Index(out, "Your next steps")

	require.True(t, transitionIdx >= 0 && growthIdx >= 0 && pathsIdx >= 0 && skillsIdx >= 0 && actionsIdx >= 0, out)
	assert.Less(t, transitionIdx, growthIdx)
	assert.Less(t, growthIdx, pathsIdx)
	assert.Less(t, pathsIdx, skillsIdx)
	assert.Less(t, skillsIdx, actionsIdx)
}

func TestFormatAcknowledgmentLeads(t *testing.T) {
	f := NewFormatter()
	out := f.Format(sampleSet(), "Nice work completing that learning step.")
	assert.True(t, strings.HasPrefix(out, "Nice work"), out)
}

func TestFormatAlwaysActionable(t *testing.T) {
	f := NewFormatter()

	cases := []*contract.RecommendationSet{
		nil,
		{},
		sampleSet(),
		{CareerPaths: []domain.CareerPath{{Title: "X", Reasoning: "A fine option."}}},
		{InRole: &domain.InRoleAnalysis{
			Scope: domain.ScopeCurrentRoleOnly,
			Opportunities: []domain.GrowthOpportunity{
				{Type: domain.OpportunityVisibility, Title: "Present your work", Description: "Give a short demo."},
			},
		}},
	}
	for _, set := range cases {
		out := f.Format(set, "")
		require.NotEmpty(t, out)
		lower := strings.ToLower(out)
		var actionable bool
		for _, m := range []string{"?", "recommend", "suggest", "try ", "start ", "consider", "next step"} {
			if strings.Contains(lower, m) {
				actionable = true
				break
			}
		}
		assert.True(t, actionable, out)
	}
}

func TestEnsureActionableAppendsQuestion(t *testing.T) {
	out := EnsureActionable("Here is some information.")
	assert.Contains(t, out, "?")

	unchanged := "I recommend the analyst path."
	assert.Equal(t, unchanged, EnsureActionable(unchanged))
}

func TestFormatActionsGroupedByTimeframe(t *testing.T) {
	f := NewFormatter()
	out := f.Format(&contract.RecommendationSet{Actions: []domain.ActionStep{
		{Description: "Monthly thing", Timeframe: domain.TimeframeThisMonth},
		{Description: "Daily thing", Timeframe: domain.TimeframeToday},
	}}, "")

	today := strings.Index(out, "Today:")
	month := strings.Index(out, "This month:")
	require.True(t, today >= 0 && month >= 0, out)
	assert.Less(t, today, month)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()

	s := &domain.Session{ID: "s1", UserID: "u1", StartTime: time.Now()}
	store.Put(s)

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)

	store.Delete("s1")
	_, ok = store.Get("s1")
	assert.False(t, ok)
}
