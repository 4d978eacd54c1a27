// Package inrole finds growth opportunities inside the user's current
// position: more responsibility, more visibility, targeted skills, and
// an honest read on whether they are stagnating.
package inrole

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmallard/compass/internal/domain"
)

// Stagnation detection thresholds.
const (
	stagnationDirectionYears = 5
	stagnationTenureYears    = 3
	lowProgressActions       = 3
	lowProgressMilestones    = 2
)

// Advisor analyzes growth potential within the current role. Stateless.
type Advisor struct{}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

// AnalyzeInRoleGrowth always scopes to the current role and always
// produces at least one opportunity. Alternative paths appear only when
// the stagnation assessment fires.
func (a *Advisor) AnalyzeInRoleGrowth(p *domain.UserProfile) domain.InRoleAnalysis {
	if p == nil {
		p = &domain.UserProfile{}
	}

	out := domain.InRoleAnalysis{
		Scope:                domain.ScopeCurrentRoleOnly,
		Opportunities:        opportunities(p),
		SkillRecommendations: employerSkills(p),
		Stagnation:           assessStagnation(p),
	}
	if out.Stagnation != nil && out.Stagnation.IsStagnant {
		out.AlternativePaths = alternativePaths(p)
	}
	return out
}

// opportunities maps tenure and skill signals to concrete suggestions.
// The presentation opportunity is unconditional, so the result is never
// empty and always carries a visibility item.
func opportunities(p *domain.UserProfile) []domain.GrowthOpportunity {
	years := p.Personal.YearsOfExperience
	var out []domain.GrowthOpportunity

	if years >= 2 {
		out = append(out, domain.GrowthOpportunity{
			Type:        domain.OpportunityResponsibility,
			Title:       "Lead a project end to end",
			Description: "Volunteer to own an upcoming project from planning through delivery.",
		})
	}
	if years >= 3 && len(p.Skills.Current) >= 3 {
		out = append(out, domain.GrowthOpportunity{
			Type:        domain.OpportunityMentoring,
			Title:       "Mentor a newer colleague",
			Description: "Your experience and skill set are enough to meaningfully accelerate someone junior.",
		})
	}
	out = append(out, domain.GrowthOpportunity{
		Type:        domain.OpportunityVisibility,
		Title:       "Present your work",
		Description: "Give a short talk or demo to your team about something you built or learned.",
	})
	if years >= 2 {
		out = append(out, domain.GrowthOpportunity{
			Type:        domain.OpportunityVisibility,
			Title:       "Work across team boundaries",
			Description: "Join a cross-functional effort to get visibility outside your immediate team.",
		})
	}
	if len(p.Skills.Learning) > 0 {
		out = append(out, domain.GrowthOpportunity{
			Type:        domain.OpportunityLearning,
			Title:       fmt.Sprintf("Finish learning %s", p.Skills.Learning[0].Name),
			Description: "Completing an in-progress skill is the fastest way to expand what you can take on.",
		})
	}
	if years >= 4 {
		out = append(out, domain.GrowthOpportunity{
			Type:        domain.OpportunityResponsibility,
			Title:       "Take ownership of a system or process",
			Description: "Become the person your organization relies on for one important area.",
		})
	}
	return out
}

// employerSkills recommends skills the user's employer benefits from
// directly, keyed off the current role title.
func employerSkills(p *domain.UserProfile) []domain.SkillRecommendation {
	role := strings.ToLower(p.Personal.CurrentRole)
	var out []domain.SkillRecommendation

	add := func(skill string, priority float64, reasoning string) {
		level, _ := p.CurrentSkillLevel(skill)
		out = append(out, domain.SkillRecommendation{
			Skill:        skill,
			Priority:     priority,
			Reasoning:    reasoning,
			CurrentLevel: level,
			TargetLevel:  7,
		})
	}

	switch {
	case strings.Contains(role, "engineer") || strings.Contains(role, "developer"):
		add("System Design", 0.9,
			"Designing larger pieces of your employer's systems is the clearest path to senior scope in your role.")
		add("Code Review", 0.7,
			"Raising code quality across the team multiplies your value to the organization.")
	case strings.Contains(role, "product"):
		add("Stakeholder Management", 0.9,
			"Managing stakeholders well is what your organization notices most in a product role.")
		add("Data Analysis", 0.8,
			"Backing product decisions with data makes your case to the employer much stronger.")
	case strings.Contains(role, "design"):
		add("User Research", 0.9,
			"Grounding design work in research gives it weight inside your organization.")
		add("Prototyping", 0.7,
			"Fast prototypes let your employer test ideas cheaply before committing.")
	}

	if p.Personal.YearsOfExperience >= 2 {
		add("Communication", 0.6,
			"At your tenure, clear communication is what your employer expects to see next.")
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// assessStagnation fires on an explicit stagnation struggle, a direction
// struggle late in tenure, or low recent progress with meaningful
// tenure. Nil when nothing fires.
func assessStagnation(p *domain.UserProfile) *domain.StagnationAssessment {
	years := p.Personal.YearsOfExperience

	var signals []string
	severity := 0.0

	if s, ok := p.StruggleOfType(domain.ChallengeStagnation); ok {
		signals = append(signals, "you describe feeling stuck in your current role")
		severity = s.Severity
	}
	if _, ok := p.StruggleOfType(domain.ChallengeDirection); ok && years >= stagnationDirectionYears {
		signals = append(signals, fmt.Sprintf("unclear direction after %d years in the field", years))
	}
	if years >= stagnationTenureYears &&
		len(p.Progress.CompletedActions) < lowProgressActions &&
		completedMilestones(p) < lowProgressMilestones {
		signals = append(signals, "little recorded progress despite established tenure")
	}

	if len(signals) == 0 {
		return nil
	}

	// Each additional signal escalates; an explicit struggle's severity
	// sets the floor.
	combined := severity + 0.25*float64(len(signals))
	if combined > 1 {
		combined = 1
	}
	return &domain.StagnationAssessment{
		IsStagnant: true,
		Severity:   combined,
		Signals:    signals,
	}
}

func completedMilestones(p *domain.UserProfile) int {
	n := 0
	for _, m := range p.Progress.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// alternativePaths is only reached for stagnant users.
func alternativePaths(p *domain.UserProfile) []domain.AlternativePath {
	out := []domain.AlternativePath{
		{
			Title:       "Internal transfer",
			Description: "Move to a different team at your current employer; you keep context and lose the rut.",
		},
		{
			Title:       "Same role, new environment",
			Description: "The role may still fit; a different company can change everything around it.",
		},
	}
	if len(p.Career.Interests) > 0 {
		out = append(out, domain.AlternativePath{
			Title:       fmt.Sprintf("Pivot toward %s", p.Career.Interests[0]),
			Description: fmt.Sprintf("Your interest in %s could anchor a more deliberate change of direction.", p.Career.Interests[0]),
		})
	}
	if p.Personal.YearsOfExperience >= 5 {
		out = append(out, domain.AlternativePath{
			Title:       "Leadership track",
			Description: "With your tenure, moving toward management or technical leadership is a realistic reset.",
		})
	}
	return out
}
