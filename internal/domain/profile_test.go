package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampSkillLevel(t *testing.T) {
	assert.Equal(t, 0, ClampSkillLevel(-3))
	assert.Equal(t, 10, ClampSkillLevel(14))
	assert.Equal(t, 7, ClampSkillLevel(7))
}

func TestNormalizeSkills(t *testing.T) {
	p := UserProfile{
		Skills: SkillSet{
			Current:  []Skill{{Name: "Go", Level: 12}},
			Learning: []Skill{{Name: "SQL", Level: -1}},
			Target:   []Skill{{Name: "Kubernetes", Level: 5}},
		},
	}
	p.NormalizeSkills()
	assert.Equal(t, 10, p.Skills.Current[0].Level)
	assert.Equal(t, 0, p.Skills.Learning[0].Level)
	assert.Equal(t, 5, p.Skills.Target[0].Level)
}

func TestTouchNeverMovesBackwards(t *testing.T) {
	later := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	earlier := later.AddDate(0, -1, 0)

	p := UserProfile{}
	p.Touch(later)
	p.Touch(earlier)
	assert.Equal(t, later, p.Progress.LastUpdated)
}

func TestCurrentSkillLevelIsCaseInsensitive(t *testing.T) {
	p := UserProfile{Skills: SkillSet{Current: []Skill{{Name: "JavaScript", Level: 6}}}}

	level, ok := p.CurrentSkillLevel("javascript")
	assert.True(t, ok)
	assert.Equal(t, 6, level)

	_, ok = p.CurrentSkillLevel("Rust")
	assert.False(t, ok)
}

func TestSessionAppendBumpsLastActivity(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s := Session{ID: "s1", StartTime: start, LastActivity: start}

	s.Append(Message{ID: "m1", Role: RoleUser, Content: "hi", Timestamp: start.Add(time.Minute)})
	assert.Equal(t, start.Add(time.Minute), s.LastActivity)
	assert.Len(t, s.Context.History, 1)

	_, ok := s.LastAssistantMessage()
	assert.False(t, ok)

	s.Append(Message{ID: "m2", Role: RoleAssistant, Content: "hello", Timestamp: start.Add(2 * time.Minute)})
	last, ok := s.LastAssistantMessage()
	assert.True(t, ok)
	assert.Equal(t, "m2", last.ID)
}
