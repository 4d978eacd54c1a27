// Package actions turns prioritized goals into concrete, time-bucketed
// action steps with due dates, and caps the per-timeframe load so users
// are not buried in tasks.
package actions

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmallard/compass/internal/domain"
)

// Per-timeframe step caps. The tighter cap applies when the user juggles
// more than two active goals.
const (
	StepsPerTimeframe     = 3
	StepsPerTimeframeBusy = 2
	busyGoalThreshold     = 2
)

type Generator struct {
	ids   domain.IDGenerator
	clock domain.Clock
}

func NewGenerator(ids domain.IDGenerator, clock domain.Clock) *Generator {
	return &Generator{ids: ids, clock: clock}
}

var timeframes = []domain.Timeframe{
	domain.TimeframeToday,
	domain.TimeframeThisWeek,
	domain.TimeframeThisMonth,
}

// categoryPreference fixes which category each timeframe reaches for
// first: quick reflection today, people work this week, deeper learning
// this month.
var categoryPreference = map[domain.Timeframe][]domain.ActionCategory{
	domain.TimeframeToday:     {domain.CategoryReflection, domain.CategoryApplication, domain.CategoryLearning, domain.CategoryNetworking},
	domain.TimeframeThisWeek:  {domain.CategoryNetworking, domain.CategoryApplication, domain.CategoryLearning, domain.CategoryReflection},
	domain.TimeframeThisMonth: {domain.CategoryLearning, domain.CategoryApplication, domain.CategoryNetworking, domain.CategoryReflection},
}

// GenerateActionSteps produces up to one step per timeframe per goal,
// then enforces the overload cap. Goals are worked highest priority
// first; careerPath and skillRecs personalize descriptions when present.
func (g *Generator) GenerateActionSteps(
	p *domain.UserProfile,
	goals []domain.Goal,
	careerPath *domain.CareerPath,
	skillRecs []domain.SkillRecommendation,
) []domain.ActionStep {
	ordered := prioritizeGoals(goals)
	now := g.clock.Now()

	var steps []domain.ActionStep
	for _, goal := range ordered {
		applicable := applicableCategories(goal, p)
		for _, tf := range timeframes {
			cat, ok := pickCategory(tf, applicable)
			if !ok {
				continue
			}
			due := dueDate(now, tf)
			steps = append(steps, domain.ActionStep{
				ID:          g.ids.NewID(),
				Description: describe(goal, tf, cat, careerPath, skillRecs),
				Timeframe:   tf,
				Category:    cat,
				DueDate:     &due,
			})
		}
	}

	return capPerTimeframe(steps, len(ordered))
}

// prioritizeGoals orders by explicit priority descending, then short-term
// before long-term, then earlier target date.
func prioritizeGoals(goals []domain.Goal) []domain.Goal {
	out := append([]domain.Goal(nil), goals...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Type != b.Type {
			return a.Type == domain.GoalShortTerm
		}
		switch {
		case a.TargetDate == nil:
			return false
		case b.TargetDate == nil:
			return true
		default:
			return a.TargetDate.Before(*b.TargetDate)
		}
	})
	return out
}

// applicableCategories reads category hints from the goal text and the
// user's struggles, defaulting to all four categories on no signal.
func applicableCategories(goal domain.Goal, p *domain.UserProfile) map[domain.ActionCategory]bool {
	out := make(map[domain.ActionCategory]bool, 4)
	text := strings.ToLower(goal.Description)

	if strings.Contains(text, "learn") || strings.Contains(text, "skill") || strings.Contains(text, "study") || strings.Contains(text, "course") {
		out[domain.CategoryLearning] = true
	}
	if strings.Contains(text, "network") || strings.Contains(text, "connect") || strings.Contains(text, "meet") || strings.Contains(text, "people") {
		out[domain.CategoryNetworking] = true
	}
	if strings.Contains(text, "apply") || strings.Contains(text, "job") || strings.Contains(text, "interview") || strings.Contains(text, "portfolio") || strings.Contains(text, "build") {
		out[domain.CategoryApplication] = true
	}
	if strings.Contains(text, "reflect") || strings.Contains(text, "clarity") || strings.Contains(text, "figure out") || strings.Contains(text, "decide") {
		out[domain.CategoryReflection] = true
	}

	if p != nil {
		for _, s := range p.Career.Struggles {
			switch s.Type {
			case domain.ChallengeSkills:
				out[domain.CategoryLearning] = true
			case domain.ChallengeConfidence, domain.ChallengeDirection:
				out[domain.CategoryReflection] = true
			case domain.ChallengeTransition:
				out[domain.CategoryNetworking] = true
			}
		}
	}

	if len(out) == 0 {
		for _, c := range []domain.ActionCategory{
			domain.CategoryLearning, domain.CategoryNetworking,
			domain.CategoryApplication, domain.CategoryReflection,
		} {
			out[c] = true
		}
	}
	return out
}

func pickCategory(tf domain.Timeframe, applicable map[domain.ActionCategory]bool) (domain.ActionCategory, bool) {
	for _, c := range categoryPreference[tf] {
		if applicable[c] {
			return c, true
		}
	}
	return "", false
}

func describe(
	goal domain.Goal,
	tf domain.Timeframe,
	cat domain.ActionCategory,
	careerPath *domain.CareerPath,
	skillRecs []domain.SkillRecommendation,
) string {
	topSkill := ""
	if len(skillRecs) > 0 {
		topSkill = skillRecs[0].Skill
	}
	pathTitle := ""
	if careerPath != nil {
		pathTitle = careerPath.Title
	}

	switch cat {
	case domain.CategoryLearning:
		if topSkill != "" {
			return fmt.Sprintf("Spend focused time on %s this month toward %q.", topSkill, goal.Description)
		}
		return fmt.Sprintf("Pick one resource and start learning toward %q.", goal.Description)
	case domain.CategoryNetworking:
		if pathTitle != "" {
			return fmt.Sprintf("Reach out to one person working as a %s this week.", pathTitle)
		}
		return fmt.Sprintf("Have one conversation this week with someone relevant to %q.", goal.Description)
	case domain.CategoryApplication:
		if tf == domain.TimeframeToday {
			return fmt.Sprintf("Take one small concrete step today toward %q.", goal.Description)
		}
		return fmt.Sprintf("Produce something tangible (draft, project, application) toward %q.", goal.Description)
	default: // reflection
		return fmt.Sprintf("Write down what success on %q looks like and what's blocking it.", goal.Description)
	}
}

// dueDate computes the bucket boundary: end of today, end of the upcoming
// Sunday, or end of the month's last day.
func dueDate(now time.Time, tf domain.Timeframe) time.Time {
	endOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}
	switch tf {
	case domain.TimeframeToday:
		return endOfDay(now)
	case domain.TimeframeThisWeek:
		days := (7 - int(now.Weekday())) % 7
		return endOfDay(now.AddDate(0, 0, days))
	default:
		firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return endOfDay(firstOfNext.AddDate(0, 0, -1))
	}
}

// capPerTimeframe drops excess steps per bucket in generation order.
func capPerTimeframe(steps []domain.ActionStep, goalCount int) []domain.ActionStep {
	limit := StepsPerTimeframe
	if goalCount > busyGoalThreshold {
		limit = StepsPerTimeframeBusy
	}

	counts := make(map[domain.Timeframe]int, 3)
	out := steps[:0]
	for _, s := range steps {
		if counts[s.Timeframe] >= limit {
			continue
		}
		counts[s.Timeframe]++
		out = append(out, s)
	}
	return out
}
