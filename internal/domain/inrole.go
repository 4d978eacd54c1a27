package domain

// ScopeCurrentRoleOnly marks analyses that deliberately stay inside the
// user's existing position.
const ScopeCurrentRoleOnly = "current_role_only"

type OpportunityType string

const (
	OpportunityResponsibility OpportunityType = "responsibility"
	OpportunityVisibility     OpportunityType = "visibility"
	OpportunityMentoring      OpportunityType = "mentoring"
	OpportunityLearning       OpportunityType = "learning"
)

// GrowthOpportunity is a concrete way to grow without changing roles.
type GrowthOpportunity struct {
	Type        OpportunityType
	Title       string
	Description string
}

// StagnationAssessment reports whether the user appears stuck in place
// and why. Absent entirely when no stagnation signal fires.
type StagnationAssessment struct {
	IsStagnant bool
	Severity   float64 // [0,1]
	Signals    []string
}

// AlternativePath is an escape route offered only to stagnant users.
type AlternativePath struct {
	Title       string
	Description string
}

// InRoleAnalysis is the output of the current-role growth advisor.
type InRoleAnalysis struct {
	Scope                string
	Opportunities        []GrowthOpportunity
	SkillRecommendations []SkillRecommendation
	Stagnation           *StagnationAssessment
	AlternativePaths     []AlternativePath
}
