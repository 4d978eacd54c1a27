package domain

import (
	"strings"
	"time"
)

const (
	SkillLevelMin = 0
	SkillLevelMax = 10
)

type Skill struct {
	Name     string
	Level    int // clamped to [SkillLevelMin, SkillLevelMax]
	Category string
}

type Goal struct {
	ID          string
	Description string
	Type        GoalType
	Priority    int // 1-10, higher is more urgent
	TargetDate  *time.Time
}

type Challenge struct {
	Type        ChallengeType
	Description string
	Severity    float64 // higher is more severe
}

type PersonalInfo struct {
	Age               int
	CurrentRole       string
	YearsOfExperience int
	Education         string
	Industry          string
}

type CareerInfo struct {
	Goals       []Goal
	Interests   []string
	Struggles   []Challenge
	CurrentPath *CareerPath
}

type SkillSet struct {
	Current  []Skill
	Learning []Skill
	Target   []Skill
}

type Mindset struct {
	ConfidenceLevel float64 // [0,1]
	MotivationLevel float64 // [0,1]
	PrimaryConcerns []string
}

type Milestone struct {
	ID          string
	Title       string
	TargetDate  time.Time
	Completed   bool
	CompletedAt *time.Time
}

// ProgressEvent is one recorded action completion, as returned by the
// data store's progress history.
type ProgressEvent struct {
	ActionID    string
	CompletedAt time.Time
}

type Progress struct {
	CompletedActions []string
	Milestones       []Milestone
	LastUpdated      time.Time
}

type UserProfile struct {
	UserID   string
	Personal PersonalInfo
	Career   CareerInfo
	Skills   SkillSet
	Mindset  Mindset
	Progress Progress
}

// ClampSkillLevel forces a level into the valid [0,10] band.
func ClampSkillLevel(level int) int {
	if level < SkillLevelMin {
		return SkillLevelMin
	}
	if level > SkillLevelMax {
		return SkillLevelMax
	}
	return level
}

// NormalizeSkills clamps every skill level in the profile.
func (p *UserProfile) NormalizeSkills() {
	for _, set := range [][]Skill{p.Skills.Current, p.Skills.Learning, p.Skills.Target} {
		for i := range set {
			set[i].Level = ClampSkillLevel(set[i].Level)
		}
	}
}

// Touch advances Progress.LastUpdated to now. It never moves backwards.
func (p *UserProfile) Touch(now time.Time) {
	if now.After(p.Progress.LastUpdated) {
		p.Progress.LastUpdated = now
	}
}

// CurrentSkillLevel returns the level of a current skill by name.
func (p *UserProfile) CurrentSkillLevel(name string) (int, bool) {
	for _, s := range p.Skills.Current {
		if strings.EqualFold(s.Name, name) {
			return s.Level, true
		}
	}
	return 0, false
}

// HasSkill reports whether name appears in the current or learning sets.
func (p *UserProfile) HasSkill(name string) bool {
	for _, set := range [][]Skill{p.Skills.Current, p.Skills.Learning} {
		for _, s := range set {
			if strings.EqualFold(s.Name, name) {
				return true
			}
		}
	}
	return false
}

// HasCompletedAction reports whether the action id is in the completed set.
func (p *UserProfile) HasCompletedAction(id string) bool {
	for _, a := range p.Progress.CompletedActions {
		if a == id {
			return true
		}
	}
	return false
}

// StruggleOfType returns the first struggle of the given type, if any.
func (p *UserProfile) StruggleOfType(t ChallengeType) (Challenge, bool) {
	for _, c := range p.Career.Struggles {
		if c.Type == t {
			return c, true
		}
	}
	return Challenge{}, false
}
