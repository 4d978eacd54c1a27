package conversation

import (
	"fmt"
	"strings"

	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/domain"
)

// FallbackMessage is used when nothing else could be composed.
const FallbackMessage = "I'm here to help with your career. What would you like to focus on — direction, skills, or your next concrete step?"

const maxListedPaths = 3
const maxListedSkills = 3

// actionableMarkers detect that a reply gives the user something to do.
var actionableMarkers = []string{
	"?", "recommend", "suggest", "try ", "start ", "consider", "next step",
}

// Formatter renders recommendation sets as conversational text.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format combines the available recommendations in fixed priority:
// transition plan, then growth plan, then career paths, skills, and
// action steps. A non-empty acknowledgment leads. The result always
// contains an actionable element.
func (f *Formatter) Format(recs *contract.RecommendationSet, acknowledgment string) string {
	var sections []string
	if acknowledgment != "" {
		sections = append(sections, acknowledgment)
	}

	if recs != nil {
		if recs.Transition != nil {
			sections = append(sections, f.transitionSection(recs.Transition))
		}
		if recs.GrowthPlan != nil {
			sections = append(sections, f.growthSection(recs.GrowthPlan))
		}
		if len(recs.CareerPaths) > 0 {
			sections = append(sections, f.pathsSection(recs.CareerPaths))
		}
		if len(recs.Skills) > 0 {
			sections = append(sections, f.skillsSection(recs.Skills))
		}
		if len(recs.Actions) > 0 {
			sections = append(sections, f.actionsSection(recs.Actions))
		}
		if recs.InRole != nil {
			sections = append(sections, f.inRoleSection(recs.InRole))
		}
	}

	if len(sections) == 0 {
		return FallbackMessage
	}
	return EnsureActionable(strings.Join(sections, "\n\n"))
}

// EnsureActionable appends a generic next-step question when the text
// carries none of the actionable markers.
func EnsureActionable(text string) string {
	lower := strings.ToLower(text)
	for _, m := range actionableMarkers {
		if strings.Contains(lower, m) {
			return text
		}
	}
	return text + "\n\nWhat would you like to tackle first?"
}

func (f *Formatter) transitionSection(tp *domain.TransitionPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Moving from %s to %s looks %s, with an estimated timeline of %s.\n",
		tp.SourceField, tp.TargetField, tp.Difficulty, tp.EstimatedDuration)

	if len(tp.TransferableSkills) > 0 {
		names := make([]string, 0, len(tp.TransferableSkills))
		for _, s := range tp.TransferableSkills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "Working in your favor: %s.\n", strings.Join(names, ", "))
	}
	if len(tp.SkillsToAcquire) > 0 {
		names := make([]string, 0, len(tp.SkillsToAcquire))
		for _, s := range tp.SkillsToAcquire {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "You'd need to pick up: %s.\n", strings.Join(names, ", "))
	}
	if len(tp.Phases) > 0 {
		fmt.Fprintf(&b, "I suggest starting with the %s phase (%s): %s",
			tp.Phases[0].Name, tp.Phases[0].Duration, tp.Phases[0].Focus)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) growthSection(plan *domain.GrowthPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a %s growth plan toward %s:\n", plan.Timeline, plan.CareerPath.Title)
	for i, phase := range plan.Phases {
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, phase.Name, phase.Duration)
		if len(phase.Objectives) > 0 {
			fmt.Fprintf(&b, " — %s", lowerFirst(phase.Objectives[0]))
		}
		b.WriteString("\n")
	}
	if len(plan.Phases) > 0 && len(plan.Phases[0].Actions) > 0 {
		fmt.Fprintf(&b, "To start, try this: %s", lowerFirst(plan.Phases[0].Actions[0].Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) pathsSection(paths []domain.CareerPath) string {
	var b strings.Builder
	b.WriteString("Based on your profile, I recommend considering these paths:\n")
	limit := len(paths)
	if limit > maxListedPaths {
		limit = maxListedPaths
	}
	for i := 0; i < limit; i++ {
		p := paths[i]
		fmt.Fprintf(&b, "%d. %s (%.0f%% fit, %s) — %s\n",
			i+1, p.Title, p.FitScore*100, p.TimeToTransition, p.Reasoning)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) skillsSection(skills []domain.SkillRecommendation) string {
	var b strings.Builder
	b.WriteString("Skills worth focusing on, in order:\n")
	limit := len(skills)
	if limit > maxListedSkills {
		limit = maxListedSkills
	}
	for i := 0; i < limit; i++ {
		s := skills[i]
		fmt.Fprintf(&b, "%d. %s (~%s) — %s\n", i+1, s.Skill, s.EstimatedTime, s.Reasoning)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) actionsSection(actions []domain.ActionStep) string {
	byTimeframe := map[domain.Timeframe][]domain.ActionStep{}
	for _, a := range actions {
		byTimeframe[a.Timeframe] = append(byTimeframe[a.Timeframe], a)
	}

	var b strings.Builder
	b.WriteString("Your next steps:\n")
	for _, tf := range []domain.Timeframe{domain.TimeframeToday, domain.TimeframeThisWeek, domain.TimeframeThisMonth} {
		group := byTimeframe[tf]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", timeframeLabel(tf))
		for _, a := range group {
			fmt.Fprintf(&b, "- %s\n", a.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) inRoleSection(analysis *domain.InRoleAnalysis) string {
	var b strings.Builder
	b.WriteString("Ways to grow where you are:\n")
	for _, o := range analysis.Opportunities {
		fmt.Fprintf(&b, "- %s: %s\n", o.Title, o.Description)
	}
	if analysis.Stagnation != nil && analysis.Stagnation.IsStagnant && len(analysis.AlternativePaths) > 0 {
		b.WriteString("Since you're feeling stuck, a few alternatives to consider:\n")
		for _, alt := range analysis.AlternativePaths {
			fmt.Fprintf(&b, "- %s: %s\n", alt.Title, alt.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func timeframeLabel(tf domain.Timeframe) string {
	switch tf {
	case domain.TimeframeToday:
		return "Today"
	case domain.TimeframeThisWeek:
		return "This week"
	default:
		return "This month"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
