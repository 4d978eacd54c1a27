// Package analyzer derives secondary signals from a user profile:
// completeness, career stage, challenge classification, and progress over
// a time window. Every function tolerates missing optional fields and a
// nil profile; absent data classifies as incomplete, never as an error.
package analyzer

import (
	"sort"
	"time"

	"github.com/jmallard/compass/internal/domain"
)

type Completeness struct {
	IsComplete    bool
	MissingFields []string
}

// CheckProfileCompleteness reports whether the profile carries enough to
// personalize recommendations: a current role, at least one goal, one
// interest, and one struggle.
func CheckProfileCompleteness(p *domain.UserProfile) Completeness {
	var missing []string
	if p == nil {
		return Completeness{MissingFields: []string{"currentRole", "goals", "interests", "struggles"}}
	}
	if p.Personal.CurrentRole == "" {
		missing = append(missing, "currentRole")
	}
	if len(p.Career.Goals) == 0 {
		missing = append(missing, "goals")
	}
	if len(p.Career.Interests) == 0 {
		missing = append(missing, "interests")
	}
	if len(p.Career.Struggles) == 0 {
		missing = append(missing, "struggles")
	}
	return Completeness{IsComplete: len(missing) == 0, MissingFields: missing}
}

type Analysis struct {
	CareerStage       domain.CareerStage
	PrimaryChallenges []domain.Challenge
}

// AnalyzeProfile derives the career stage from tenure and orders struggles
// by severity, most severe first.
func AnalyzeProfile(p *domain.UserProfile) Analysis {
	if p == nil {
		return Analysis{CareerStage: domain.StageEarly}
	}

	stage := domain.StageEarly
	switch years := p.Personal.YearsOfExperience; {
	case years > 7:
		stage = domain.StageSenior
	case years >= 3:
		stage = domain.StageMid
	}

	challenges := make([]domain.Challenge, len(p.Career.Struggles))
	copy(challenges, p.Career.Struggles)
	sort.SliceStable(challenges, func(i, j int) bool {
		return challenges[i].Severity > challenges[j].Severity
	})

	return Analysis{CareerStage: stage, PrimaryChallenges: challenges}
}

type Window struct {
	Start time.Time
	End   time.Time
}

type ProgressReport struct {
	CompletedActions    int
	CompletedMilestones int
}

// TrackProgress counts action completions (from the progress history) and
// completed milestones whose completion falls inside the window.
func TrackProgress(p *domain.UserProfile, events []domain.ProgressEvent, w Window) ProgressReport {
	var report ProgressReport
	for _, e := range events {
		if inWindow(e.CompletedAt, w) {
			report.CompletedActions++
		}
	}
	if p == nil {
		return report
	}
	for _, m := range p.Progress.Milestones {
		if m.Completed && m.CompletedAt != nil && inWindow(*m.CompletedAt, w) {
			report.CompletedMilestones++
		}
	}
	return report
}

func inWindow(t time.Time, w Window) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
