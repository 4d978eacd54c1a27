package intent

import (
	"testing"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecognizer(t *testing.T) *Recognizer {
	t.Helper()
	base, err := knowledge.Load()
	require.NoError(t, err)
	return NewRecognizer(base)
}

func TestRecognizeCategories(t *testing.T) {
	r := newRecognizer(t)

	cases := []struct {
		message string
		want    domain.IntentType
	}{
		{"I'm a junior developer with 2 years of experience", domain.IntentProfileBuilding},
		{"What career is right for me? I can't figure out what direction to take", domain.IntentCareerClarity},
		{"What should I learn to get better at backend work?", domain.IntentSkillGuidance},
		{"Where do I start? I need an action plan for this week", domain.IntentActionPlanning},
		{"I feel like I'm not good enough for this job", domain.IntentMindsetSupport},
		{"Can you build me a long-term growth plan to become a senior engineer?", domain.IntentGrowthPlanning},
		{"I want to switch from marketing into data science", domain.IntentTransitionGuidance},
		{"Quick check-in: I completed the SQL course, how am I doing so far?", domain.IntentProgressCheck},
	}
	for _, tc := range cases {
		got := r.Recognize(tc.message)
		assert.Equal(t, tc.want, got.Type, "message: %q", tc.message)
	}
}

func TestRecognizeDefaults(t *testing.T) {
	r := newRecognizer(t)

	// A question with no category signal defaults to career clarity.
	got := r.Recognize("hmm?")
	assert.Equal(t, domain.IntentCareerClarity, got.Type)

	// A statement with no signal defaults to profile building.
	got = r.Recognize("hello there")
	assert.Equal(t, domain.IntentProfileBuilding, got.Type)
}

func TestConfidenceBounds(t *testing.T) {
	r := newRecognizer(t)

	long := "I have been working as a software developer for several years now and I " +
		"really want to learn new skills, improve my craft, study system design, and " +
		"practice until I get better at all of it"
	got := r.Recognize(long)
	assert.GreaterOrEqual(t, got.Confidence, 0.5)
	assert.LessOrEqual(t, got.Confidence, 1.0)

	short := r.Recognize("skills?")
	assert.GreaterOrEqual(t, short.Confidence, 0.5)
	assert.LessOrEqual(t, short.Confidence, 1.0)
	assert.Greater(t, got.Confidence, short.Confidence, "longer multi-keyword message should score higher")
}

func TestStuckAndUnsureScenario(t *testing.T) {
	r := newRecognizer(t)
	got := r.Recognize("I feel stuck and don't know what to learn")

	assert.Contains(t, []domain.IntentType{
		domain.IntentMindsetSupport,
		domain.IntentCareerClarity,
		domain.IntentSkillGuidance,
	}, got.Type)

	require.NotNil(t, got.Entities.Emotional)
	assert.Greater(t, got.Entities.Emotional.Severity, 0.0)

	hasExpected := false
	for _, ind := range got.Entities.Emotional.Indicators {
		if ind == "stagnation" || ind == "confusion" {
			hasExpected = true
		}
	}
	assert.True(t, hasExpected, "indicators: %v", got.Entities.Emotional.Indicators)
}

func TestShouldPrioritizeMindset(t *testing.T) {
	r := newRecognizer(t)

	got := r.Recognize("I am completely overwhelmed and stressed, I can't keep up!!")
	require.NotNil(t, got.Entities.Emotional)
	assert.GreaterOrEqual(t, got.Entities.Emotional.Severity, 0.5)
	assert.True(t, ShouldPrioritizeMindset(got))

	// Mindset intent prioritizes regardless of severity.
	assert.True(t, ShouldPrioritizeMindset(domain.Intent{Type: domain.IntentMindsetSupport}))

	// Calm tactical question does not.
	calm := r.Recognize("Which skills should I study for data analysis?")
	assert.False(t, ShouldPrioritizeMindset(calm))
}

func TestDetectEmotionalContentWeights(t *testing.T) {
	neg := DetectEmotionalContent("I'm burned out and it feels hopeless")
	assert.True(t, neg.HasEmotionalContent)
	assert.GreaterOrEqual(t, neg.Severity, 0.5)

	pos := DetectEmotionalContent("I'm excited and motivated to start")
	assert.True(t, pos.HasEmotionalContent)
	assert.Less(t, pos.Severity, 0.5, "positive emotions should not escalate severity")

	none := DetectEmotionalContent("please list database skills")
	assert.False(t, none.HasEmotionalContent)
	assert.Zero(t, none.Severity)
}

func TestExtractEntities(t *testing.T) {
	r := newRecognizer(t)

	got := r.Recognize("I know Python and SQL, want to move into data science within 6 months")
	assert.Contains(t, got.Entities.Skills, "Python")
	assert.Contains(t, got.Entities.Skills, "SQL")
	assert.Contains(t, got.Entities.CareerFields, "data science")
	require.NotNil(t, got.Entities.Timeframe)
	assert.Equal(t, 6, got.Entities.Timeframe.Months)

	got = r.Recognize("I have 7 years of experience and want a plan for this week")
	require.NotNil(t, got.Entities.YearsOfExperience)
	assert.Equal(t, 7, *got.Entities.YearsOfExperience)
	require.NotNil(t, got.Entities.Timeframe)
	assert.Equal(t, domain.TimeframeThisWeek, got.Entities.Timeframe.Ref)

	got = r.Recognize("no entities here")
	assert.Empty(t, got.Entities.Skills)
	assert.Nil(t, got.Entities.Timeframe)
	assert.Nil(t, got.Entities.YearsOfExperience)
}
