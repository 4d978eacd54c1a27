package formatter

import (
	"fmt"
	"strings"

	"github.com/jmallard/compass/internal/contract"
	"github.com/jmallard/compass/internal/domain"
)

// FormatWelcome renders the banner shown when an interactive chat starts.
func FormatWelcome() string {
	var b strings.Builder
	b.WriteString(Header("compass"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render("Your career coaching companion."))
	b.WriteString("\n")
	b.WriteString(Dim("Type a message and press enter. \"exit\" or ctrl+c to leave."))
	b.WriteString("\n")
	return b.String()
}

// FormatResponse renders one coach reply: the conversational content
// followed by a compact summary of whatever the engines produced.
func FormatResponse(resp *contract.ChatResponse) string {
	var b strings.Builder
	b.WriteString(StyleFg.Render(resp.Content))
	b.WriteString("\n")

	recs := resp.Recommendations
	if recs == nil {
		return b.String()
	}

	if len(recs.CareerPaths) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatPaths(recs.CareerPaths))
	}
	if len(recs.Skills) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Skills to build"))
		b.WriteString("\n")
		for _, s := range recs.Skills {
			fmt.Fprintf(&b, "  %s %s %s\n",
				StyleBlue.Render("▸"), Bold(s.Skill), Dim(s.EstimatedTime))
		}
	}
	if len(recs.Actions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Next actions"))
		b.WriteString("\n")
		for _, a := range recs.Actions {
			fmt.Fprintf(&b, "  %s %s %s\n",
				StylePurple.Render("•"), a.Description, Dim("["+string(a.Timeframe)+"]"))
		}
	}
	if recs.GrowthPlan != nil {
		b.WriteString("\n")
		b.WriteString(formatGrowthPlan(recs.GrowthPlan))
	}
	if recs.Transition != nil {
		b.WriteString("\n")
		b.WriteString(formatTransition(recs.Transition))
	}
	if recs.InRole != nil {
		b.WriteString("\n")
		b.WriteString(formatInRole(recs.InRole))
	}
	return b.String()
}

// FormatPaths renders a ranked career path list.
func FormatPaths(list []domain.CareerPath) string {
	var b strings.Builder
	b.WriteString(Header("Career paths"))
	b.WriteString("\n")
	for i, p := range list {
		fmt.Fprintf(&b, "  %s %s  %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			Bold(p.Title), FitIndicator(p.FitScore))
		fmt.Fprintf(&b, "     %s\n", p.Description)
		fmt.Fprintf(&b, "     %s\n", Dim(p.Reasoning))
		if p.TimeToTransition != "" {
			fmt.Fprintf(&b, "     %s %s\n", Dim("Transition:"), p.TimeToTransition)
		}
	}
	return b.String()
}

// FormatProfile renders a stored user profile.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile: " + p.UserID))
	b.WriteString("\n")
	if p.Personal.CurrentRole != "" {
		fmt.Fprintf(&b, "  %s %s (%d years)\n", Dim("Role:"),
			p.Personal.CurrentRole, p.Personal.YearsOfExperience)
	}
	if p.Personal.Industry != "" {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Industry:"), p.Personal.Industry)
	}
	if len(p.Skills.Current) > 0 {
		parts := make([]string, 0, len(p.Skills.Current))
		for _, s := range p.Skills.Current {
			parts = append(parts, fmt.Sprintf("%s (%d)", s.Name, s.Level))
		}
		fmt.Fprintf(&b, "  %s %s\n", Dim("Skills:"), strings.Join(parts, ", "))
	}
	if len(p.Career.Interests) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Interests:"), strings.Join(p.Career.Interests, ", "))
	}
	for _, g := range p.Career.Goals {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Goal:"), g.Description)
	}
	if p.Career.CurrentPath != nil {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Current path:"), p.Career.CurrentPath.Title)
	}
	if n := len(p.Progress.CompletedActions); n > 0 {
		fmt.Fprintf(&b, "  %s %d\n", Dim("Actions completed:"), n)
	}
	return b.String()
}

func formatGrowthPlan(plan *domain.GrowthPlan) string {
	var b strings.Builder
	b.WriteString(Header("Growth plan: " + plan.CareerPath.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", Dim("Timeline:"), plan.Timeline)
	for _, ph := range plan.Phases {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleGreen.Render("▸"), Bold(ph.Name), Dim(ph.Duration))
		for _, o := range ph.Objectives {
			fmt.Fprintf(&b, "      %s\n", o)
		}
	}
	for _, m := range plan.Milestones {
		marker := StyleDim.Render("○")
		if m.Completed {
			marker = StyleGreen.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", marker, m.Title,
			Dim(m.TargetDate.Format("Jan 2006")))
	}
	return b.String()
}

func formatTransition(plan *domain.TransitionPlan) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Transition: %s → %s", plan.SourceField, plan.TargetField)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s  %s %s\n", Dim("Difficulty:"), string(plan.Difficulty),
		Dim("Duration:"), plan.EstimatedDuration)
	for _, s := range plan.TransferableSkills {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleGreen.Render("✓"), s.Name,
			Dim(fmt.Sprintf("transfers at %.0f%%", s.Transferability*100)))
	}
	for _, s := range plan.SkillsToAcquire {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("+"), s.Name)
	}
	for _, ph := range plan.Phases {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleBlue.Render("▸"), Bold(ph.Name), Dim(ph.Duration))
	}
	return b.String()
}

func formatInRole(a *domain.InRoleAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Growing where you are"))
	b.WriteString("\n")
	for _, o := range a.Opportunities {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleGreen.Render("▸"), Bold(o.Title),
			Dim("("+string(o.Type)+")"))
	}
	if a.Stagnation != nil && a.Stagnation.IsStagnant {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("!"),
			"Some signs you may be stalling here:")
		for _, s := range a.Stagnation.Signals {
			fmt.Fprintf(&b, "      %s\n", Dim(s))
		}
		for _, alt := range a.AlternativePaths {
			fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("→"), alt.Title)
		}
	}
	return b.String()
}
