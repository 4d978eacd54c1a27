package testutil

import (
	"time"

	"github.com/jmallard/compass/internal/domain"
	"github.com/google/uuid"
)

// ProfileOption mutates a test profile.
type ProfileOption func(*domain.UserProfile)

func WithRole(role string, years int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Personal.CurrentRole = role
		p.Personal.YearsOfExperience = years
	}
}

func WithSkills(skills ...domain.Skill) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Skills.Current = append(p.Skills.Current, skills...)
	}
}

func WithLearning(skills ...domain.Skill) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Skills.Learning = append(p.Skills.Learning, skills...)
	}
}

func WithGoal(description string, goalType domain.GoalType, priority int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Career.Goals = append(p.Career.Goals, domain.Goal{
			ID:          uuid.New().String(),
			Description: description,
			Type:        goalType,
			Priority:    priority,
		})
	}
}

func WithInterests(interests ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Career.Interests = append(p.Career.Interests, interests...)
	}
}

func WithStruggle(t domain.ChallengeType, description string, severity float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Career.Struggles = append(p.Career.Struggles, domain.Challenge{
			Type:        t,
			Description: description,
			Severity:    severity,
		})
	}
}

func WithCompletedActions(ids ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Progress.CompletedActions = append(p.Progress.CompletedActions, ids...)
	}
}

func WithProgressUpdatedAt(t time.Time) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Progress.LastUpdated = t
	}
}

// NewTestProfile builds a plausible mid-career profile; options override.
func NewTestProfile(userID string, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		UserID: userID,
		Personal: domain.PersonalInfo{
			CurrentRole:       "Software Engineer",
			YearsOfExperience: 4,
			Industry:          "technology",
		},
		Skills: domain.SkillSet{
			Current: []domain.Skill{
				{Name: "JavaScript", Level: 6, Category: "technical"},
				{Name: "SQL", Level: 4, Category: "technical"},
			},
		},
		Progress: domain.Progress{LastUpdated: time.Now().UTC().AddDate(0, -1, 0)},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
