// Package paths matches a user profile against the career path templates
// and scores each candidate. Output is never empty: a generic development
// path is emitted when nothing matches.
package paths

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
)

// Fit score factor weights. Interest overlap dominates, then skill
// overlap, template growth potential, and an experience factor.
const (
	weightInterests  = 0.4
	weightSkills     = 0.3
	weightGrowth     = 0.2
	weightExperience = 0.1

	maxInterestMatches = 3
	maxSkillMatches    = 5
)

type Engine struct {
	base *knowledge.Base
	ids  domain.IDGenerator
}

func NewEngine(base *knowledge.Base, ids domain.IDGenerator) *Engine {
	return &Engine{base: base, ids: ids}
}

// GeneratePaths returns candidate career paths sorted by fit score
// descending. A default path guarantees a non-empty result.
func (e *Engine) GeneratePaths(p *domain.UserProfile) []domain.CareerPath {
	var out []domain.CareerPath
	if p != nil {
		for _, tpl := range e.base.Paths {
			if path, ok := e.scoreTemplate(p, tpl); ok {
				out = append(out, path)
			}
		}
		if p.Personal.CurrentRole != "" {
			out = append(out, e.seniorTrack(p))
		}
	}

	if len(out) == 0 {
		out = append(out, e.defaultPath())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FitScore > out[j].FitScore
	})
	return out
}

// scoreTemplate decides candidacy and computes the fit score. A template
// qualifies on any of: interest keyword match, current skill match, or
// listed industry.
func (e *Engine) scoreTemplate(p *domain.UserProfile, tpl knowledge.PathTemplate) (domain.CareerPath, bool) {
	interestMatches := countInterestMatches(p.Career.Interests, tpl.Keywords)
	skillMatches := countSkillMatches(p.Skills.Current, tpl.RelatedSkills)
	industryMatch := containsFold(tpl.Industries, p.Personal.Industry)

	if interestMatches == 0 && skillMatches == 0 && !industryMatch {
		return domain.CareerPath{}, false
	}

	score := fitScore(interestMatches, skillMatches, tpl.GrowthPotential, p.Personal.YearsOfExperience)
	return domain.CareerPath{
		ID:               e.ids.NewID(),
		Title:            tpl.Title,
		Description:      tpl.Description,
		Reasoning:        composeReasoning(tpl.Title, interestMatches, skillMatches, tpl.GrowthPotential, p.Personal.YearsOfExperience),
		FitScore:         score,
		RequiredSkills:   append([]string(nil), tpl.RequiredSkills...),
		TimeToTransition: tpl.TimeToTransition,
		GrowthPotential:  tpl.GrowthPotential,
	}, true
}

// seniorTrack is the in-role advancement candidate built from the current
// role. The user's own skills count as full skill overlap.
func (e *Engine) seniorTrack(p *domain.UserProfile) domain.CareerPath {
	role := p.Personal.CurrentRole
	skillMatches := len(p.Skills.Current)
	if skillMatches > maxSkillMatches {
		skillMatches = maxSkillMatches
	}
	const growth = 0.7
	score := fitScore(0, skillMatches, growth, p.Personal.YearsOfExperience)

	return domain.CareerPath{
		ID:          e.ids.NewID(),
		Title:       "Senior " + role,
		Description: fmt.Sprintf("Advance within your current track toward a senior %s position.", strings.ToLower(role)),
		Reasoning: fmt.Sprintf("Your experience as a %s carries over directly, making this the lowest-friction way to grow.",
			role),
		FitScore:         score,
		RequiredSkills:   []string{"Leadership", "Mentoring", "System Design"},
		TimeToTransition: "12-24 months",
		GrowthPotential:  growth,
	}
}

func (e *Engine) defaultPath() domain.CareerPath {
	return domain.CareerPath{
		ID:          e.ids.NewID(),
		Title:       "General Career Development",
		Description: "Strengthen transferable skills while you explore specific directions.",
		Reasoning:   "We need a bit more about your interests and skills to narrow this down, so start with broadly useful foundations.",
		FitScore:    0.5,
		RequiredSkills: []string{
			"Communication", "Problem Solving", "Time Management",
		},
		TimeToTransition: "3-6 months",
		GrowthPotential:  0.6,
	}
}

// fitScore is the weighted sum over the four factors. Interest and skill
// overlaps are capped before normalizing; the experience factor scales
// tenure to a 10-year band once past 2 years, else stays flat at 0.5.
func fitScore(interestMatches, skillMatches int, growthPotential float64, years int) float64 {
	if interestMatches > maxInterestMatches {
		interestMatches = maxInterestMatches
	}
	if skillMatches > maxSkillMatches {
		skillMatches = maxSkillMatches
	}

	expFactor := 0.5
	if years >= 2 {
		expFactor = float64(years) / 10
		if expFactor > 1 {
			expFactor = 1
		}
	}

	score := weightInterests*float64(interestMatches)/maxInterestMatches +
		weightSkills*float64(skillMatches)/maxSkillMatches +
		weightGrowth*growthPotential +
		weightExperience*expFactor
	if score > 1 {
		score = 1
	}
	return score
}

func composeReasoning(title string, interestMatches, skillMatches int, growth float64, years int) string {
	var parts []string
	if interestMatches > 0 {
		parts = append(parts, "your interests point toward this direction")
	}
	if skillMatches > 0 {
		parts = append(parts, fmt.Sprintf("you already have %d relevant skills", skillMatches))
	}
	if growth >= 0.8 {
		parts = append(parts, "the field has strong growth potential")
	}
	if years >= 2 {
		parts = append(parts, fmt.Sprintf("your %d years of experience give you a head start", years))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%s is a reasonable direction worth exploring from where you are today.", title)
	}
	sentence := strings.Join(parts, ", and ")
	return fmt.Sprintf("%s fits because %s.", title, sentence)
}

func countInterestMatches(interests, keywords []string) int {
	n := 0
	for _, interest := range interests {
		li := strings.ToLower(interest)
		for _, kw := range keywords {
			if strings.Contains(li, strings.ToLower(kw)) || strings.Contains(strings.ToLower(kw), li) {
				n++
				break
			}
		}
	}
	return n
}

func countSkillMatches(skills []domain.Skill, related []string) int {
	n := 0
	for _, s := range skills {
		ls := strings.ToLower(s.Name)
		for _, rel := range related {
			if strings.Contains(ls, strings.ToLower(rel)) || strings.Contains(strings.ToLower(rel), ls) {
				n++
				break
			}
		}
	}
	return n
}

func containsFold(haystack []string, needle string) bool {
	if needle == "" {
		return false
	}
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
