// Package contract defines the request/response types exchanged between
// the coaching service and its callers.
package contract

import (
	"time"

	"github.com/jmallard/compass/internal/domain"
)

// ChatRequest is one user turn. SessionID is empty on the first turn of
// a conversation; the response carries the id to use for follow-ups.
type ChatRequest struct {
	UserID    string `validate:"required"`
	Message   string `validate:"required"`
	SessionID string
}

// RecommendationSet groups whatever the engines produced for a turn.
// Every field is optional; an engine that failed or had nothing to say
// leaves its field empty.
type RecommendationSet struct {
	CareerPaths []domain.CareerPath
	Skills      []domain.SkillRecommendation
	Actions     []domain.ActionStep
	GrowthPlan  *domain.GrowthPlan
	Transition  *domain.TransitionPlan
	InRole      *domain.InRoleAnalysis
}

// Empty reports whether no engine contributed anything.
func (r *RecommendationSet) Empty() bool {
	return r == nil ||
		(len(r.CareerPaths) == 0 && len(r.Skills) == 0 && len(r.Actions) == 0 &&
			r.GrowthPlan == nil && r.Transition == nil && r.InRole == nil)
}

// ChatResponse is the reply to one turn.
type ChatResponse struct {
	Content         string
	SessionID       string
	Timestamp       time.Time
	Intent          domain.Intent
	Recommendations *RecommendationSet
}
