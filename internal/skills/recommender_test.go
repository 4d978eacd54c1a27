package skills

import (
	"strings"
	"testing"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommender(t *testing.T) *Recommender {
	t.Helper()
	return NewRecommender(knowledge.MustLoad())
}

func dataSciencePath() *domain.CareerPath {
	return &domain.CareerPath{
		Title:          "Data Scientist",
		RequiredSkills: []string{"Python", "Statistics", "Machine Learning", "SQL"},
	}
}

func TestRecommendSkillsDependencyOrder(t *testing.T) {
	r := newRecommender(t)
	p := &domain.UserProfile{UserID: "u1"}

	recs := r.RecommendSkills(p, dataSciencePath())
	require.NotEmpty(t, recs)

	index := make(map[string]int, len(recs))
	for i, rec := range recs {
		index[strings.ToLower(rec.Skill)] = i
	}
	for i, rec := range recs {
		for _, dep := range rec.Dependencies {
			j, inList := index[strings.ToLower(dep)]
			if inList {
				assert.Less(t, j, i, "%s depends on %s which must come earlier", rec.Skill, dep)
			}
		}
	}
}

func TestRecommendSkillsDeterministic(t *testing.T) {
	r := newRecommender(t)
	p := &domain.UserProfile{
		UserID: "u1",
		Skills: domain.SkillSet{
			Current: []domain.Skill{{Name: "SQL", Level: 3}},
			Target:  []domain.Skill{{Name: "Data Visualization", Level: 7}},
		},
	}

	first := r.RecommendSkills(p, dataSciencePath())
	second := r.RecommendSkills(p, dataSciencePath())
	assert.Equal(t, first, second)
}

func TestRecommendSkillsSkipsSatisfiedGaps(t *testing.T) {
	r := newRecommender(t)
	p := &domain.UserProfile{
		Skills: domain.SkillSet{Current: []domain.Skill{
			{Name: "Python", Level: 8},
			{Name: "SQL", Level: 2},
		}},
	}

	recs := r.RecommendSkills(p, dataSciencePath())
	for _, rec := range recs {
		assert.NotEqual(t, "Python", rec.Skill, "already above target level")
		assert.Less(t, rec.CurrentLevel, rec.TargetLevel)
	}

	var sawSQL bool
	for _, rec := range recs {
		if rec.Skill == "SQL" {
			sawSQL = true
			assert.Equal(t, 2, rec.CurrentLevel)
			assert.Equal(t, DefaultTargetLevel, rec.TargetLevel)
		}
	}
	assert.True(t, sawSQL)
}

func TestRecommendSkillsFieldsPopulated(t *testing.T) {
	r := newRecommender(t)
	path := &domain.CareerPath{Title: "Odd Path", RequiredSkills: []string{"Totally Unknown Craft"}}

	recs := r.RecommendSkills(&domain.UserProfile{}, path)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.NotEmpty(t, rec.Reasoning)
	assert.NotEmpty(t, rec.LearningResources, "fallback metadata must carry resources")
	assert.NotEmpty(t, rec.EstimatedTime)
	assert.Greater(t, rec.Priority, 0.0)
	assert.LessOrEqual(t, rec.Priority, 1.0)
}

func TestGetHighestImpactSkill(t *testing.T) {
	r := newRecommender(t)

	// With no skills at all, the first recommendation is returned.
	p := &domain.UserProfile{}
	got := r.GetHighestImpactSkill(p, dataSciencePath())
	require.NotNil(t, got)
	first := r.RecommendSkills(p, dataSciencePath())[0]
	assert.Equal(t, first.Skill, got.Skill)

	// With prerequisites in hand, a dependent skill can win.
	ready := &domain.UserProfile{
		Skills: domain.SkillSet{Current: []domain.Skill{
			{Name: "Python", Level: 4},
			{Name: "Statistics", Level: 4},
		}},
	}
	got = r.GetHighestImpactSkill(ready, dataSciencePath())
	require.NotNil(t, got)
	for _, dep := range got.Dependencies {
		assert.True(t, ready.HasSkill(dep), "winner's dependency %s must be satisfied", dep)
	}

	assert.Nil(t, r.GetHighestImpactSkill(&domain.UserProfile{}, &domain.CareerPath{}))
}

func TestOrderByDependenciesBreaksCycles(t *testing.T) {
	recs := []domain.SkillRecommendation{
		{Skill: "A", Priority: 0.5, Dependencies: []string{"B"}},
		{Skill: "B", Priority: 0.9, Dependencies: []string{"A"}},
		{Skill: "C", Priority: 0.2},
	}
	got := orderByDependencies(recs)
	require.Len(t, got, 3)

	// C has no dependencies and is placed first; the cycle is broken by
	// force-selecting the higher-priority member.
	assert.Equal(t, "C", got[0].Skill)
	assert.Equal(t, "B", got[1].Skill)
	assert.Equal(t, "A", got[2].Skill)
}
