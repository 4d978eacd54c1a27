// Package growth builds phased growth plans from a chosen career path
// and adapts them as the user records progress.
package growth

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/paths"
)

const (
	// DefaultTimelineMonths is assumed when a path carries no parseable
	// transition estimate.
	DefaultTimelineMonths = 12

	// MilestoneMinMonths and MilestoneMaxMonths bound milestone target
	// dates relative to plan creation.
	MilestoneMinMonths = 3
	MilestoneMaxMonths = 12

	// milestonePushMonths is how far an overdue milestone slips forward.
	milestonePushMonths = 3
)

// Builder assembles growth plans. IDs and timestamps are injected.
type Builder struct {
	ids   domain.IDGenerator
	clock domain.Clock
}

func NewBuilder(ids domain.IDGenerator, clock domain.Clock) *Builder {
	return &Builder{ids: ids, clock: clock}
}

// phaseTemplate is one stage of a plan. Objective strings take the path
// title as their only format argument.
type phaseTemplate struct {
	name       string
	objectives []string
}

var (
	foundationPhase = phaseTemplate{
		name: "Foundation",
		objectives: []string{
			"Understand what working as a %s looks like day to day",
			"Map the gap between your current skills and the %s role",
		},
	}
	developmentPhase = phaseTemplate{
		name: "Skill Development",
		objectives: []string{
			"Reach working proficiency in the core skills a %s needs",
			"Build concrete evidence of your new skills",
		},
	}
	applicationPhase = phaseTemplate{
		name: "Application",
		objectives: []string{
			"Apply your skills on real projects relevant to a %s",
			"Grow your network in the %s space",
		},
	}
	advancementPhase = phaseTemplate{
		name: "Advancement",
		objectives: []string{
			"Take on responsibilities typical of a %s",
			"Position yourself for the move",
		},
	}
)

// templatesFor returns 2 phases for short timelines, 3 for medium, 4 for
// long.
func templatesFor(months int) []phaseTemplate {
	switch {
	case months <= 6:
		return []phaseTemplate{foundationPhase, applicationPhase}
	case months <= 12:
		return []phaseTemplate{foundationPhase, developmentPhase, applicationPhase}
	default:
		return []phaseTemplate{foundationPhase, developmentPhase, applicationPhase, advancementPhase}
	}
}

// BuildGrowthPlan lays out a phased plan toward the given path. The
// path's transition estimate sets the timeline; required skills are
// spread across phases in order; every action is linked to a phase
// objective.
func (b *Builder) BuildGrowthPlan(p *domain.UserProfile, path domain.CareerPath) domain.GrowthPlan {
	now := b.clock.Now()

	months := DefaultTimelineMonths
	if mean, ok := paths.MeanTransitionMonths(path.TimeToTransition); ok {
		months = int(mean)
	}
	if months < 1 {
		months = 1
	}

	templates := templatesFor(months)
	spans := splitMonths(months, len(templates))

	userID := ""
	if p != nil {
		userID = p.UserID
	}

	plan := domain.GrowthPlan{
		ID:          b.ids.NewID(),
		UserID:      userID,
		CareerPath:  path,
		Timeline:    fmt.Sprintf("%d months", months),
		CreatedAt:   now,
		LastUpdated: now,
	}

	start := 0
	for i, tpl := range templates {
		objectives := make([]string, len(tpl.objectives))
		for j, o := range tpl.objectives {
			objectives[j] = strings.ReplaceAll(o, "%s", path.Title)
		}
		skills := phaseSkills(path.RequiredSkills, i, len(templates))

		phase := domain.Phase{
			Name:       tpl.name,
			Duration:   fmt.Sprintf("%d months", spans[i]),
			Objectives: objectives,
			Skills:     skills,
		}
		phase.Actions = b.phaseActions(phase, now, start)
		plan.Phases = append(plan.Phases, phase)

		end := start + spans[i]
		if m := b.milestone(phase, now, end); m != nil {
			plan.Milestones = append(plan.Milestones, *m)
		}
		start = end
	}

	return plan
}

// splitMonths divides a timeline across phases, giving any remainder to
// the last phase.
func splitMonths(total, parts int) []int {
	out := make([]int, parts)
	base := total / parts
	if base < 1 {
		base = 1
	}
	for i := range out {
		out[i] = base
	}
	if rest := total - base*parts; rest > 0 {
		out[parts-1] += rest
	}
	return out
}

// phaseSkills slices the required skills proportionally: phase i of n
// gets the i-th slice, earlier skills landing in earlier phases.
func phaseSkills(required []string, i, n int) []string {
	if len(required) == 0 {
		return nil
	}
	per := (len(required) + n - 1) / n
	lo := i * per
	if lo >= len(required) {
		return nil
	}
	hi := lo + per
	if hi > len(required) {
		hi = len(required)
	}
	return append([]string(nil), required[lo:hi]...)
}

// phaseActions derives one action per objective and one per skill, due
// dates stepping out from the phase start.
func (b *Builder) phaseActions(phase domain.Phase, created time.Time, startMonth int) []domain.PlanAction {
	var out []domain.PlanAction
	idx := 0
	add := func(desc, objective string) {
		out = append(out, domain.PlanAction{
			ID:          b.ids.NewID(),
			Description: desc,
			Objective:   objective,
			DueDate:     created.AddDate(0, startMonth, 7*(idx+1)),
		})
		idx++
	}

	for _, o := range phase.Objectives {
		add(fmt.Sprintf("Work toward: %s", lowerFirst(o)), o)
	}
	for _, s := range phase.Skills {
		desc := fmt.Sprintf("Practice %s through a small deliverable", s)
		add(desc, LinkObjective(desc, phase.Objectives))
	}
	return out
}

// milestone turns a phase end into a milestone when its target date lands
// inside the 3-12 month band from plan creation.
func (b *Builder) milestone(phase domain.Phase, created time.Time, endMonth int) *domain.Milestone {
	if endMonth < MilestoneMinMonths || endMonth > MilestoneMaxMonths {
		return nil
	}
	return &domain.Milestone{
		ID:         b.ids.NewID(),
		Title:      fmt.Sprintf("Complete the %s phase", phase.Name),
		TargetDate: created.AddDate(0, endMonth, 0),
	}
}

// AdaptGrowthPlan reconciles a plan with recorded progress: completed
// actions and milestones are marked, overdue milestones slip forward
// while they can stay inside the milestone band, and the plan gets a
// fresh LastUpdated.
func (b *Builder) AdaptGrowthPlan(plan domain.GrowthPlan, p *domain.UserProfile) domain.GrowthPlan {
	now := b.clock.Now()

	completedMilestones := make(map[string]bool)
	if p != nil {
		for _, m := range p.Progress.Milestones {
			if m.Completed {
				completedMilestones[m.ID] = true
			}
		}
	}

	out := plan
	out.Phases = make([]domain.Phase, len(plan.Phases))
	for i, phase := range plan.Phases {
		cp := phase
		cp.Actions = append([]domain.PlanAction(nil), phase.Actions...)
		for j := range cp.Actions {
			if p != nil && p.HasCompletedAction(cp.Actions[j].ID) {
				cp.Actions[j].Completed = true
			}
		}
		out.Phases[i] = cp
	}

	out.Milestones = append([]domain.Milestone(nil), plan.Milestones...)
	for i := range out.Milestones {
		m := &out.Milestones[i]
		if completedMilestones[m.ID] {
			m.Completed = true
			continue
		}
		if m.TargetDate.Before(now) {
			pushed := m.TargetDate.AddDate(0, milestonePushMonths, 0)
			if !pushed.After(plan.CreatedAt.AddDate(0, MilestoneMaxMonths, 0)) {
				m.TargetDate = pushed
			}
		}
	}

	out.LastUpdated = now
	return out
}

// LinkObjective resolves the objective an action belongs to: an exact
// match wins, then any objective sharing at least two significant words
// with the text, then the phase's first objective.
func LinkObjective(text string, objectives []string) string {
	if len(objectives) == 0 {
		return ""
	}
	for _, o := range objectives {
		if o == text {
			return o
		}
	}
	words := significantWords(text)
	for _, o := range objectives {
		shared := 0
		for w := range significantWords(o) {
			if words[w] {
				shared++
			}
		}
		if shared >= 2 {
			return o
		}
	}
	return objectives[0]
}

func significantWords(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,:;!?\"'")
		if len(w) >= 4 {
			out[w] = true
		}
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
