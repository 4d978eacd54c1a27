// Package skills computes skill gaps against a career path and orders the
// resulting recommendations by priority under dependency constraints.
package skills

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
)

// DefaultTargetLevel is assumed for required skills with no explicit
// target in the profile.
const DefaultTargetLevel = 5

// Priority factor weights: impact, gap size, learning time, dependency
// count. Shorter, low-dependency, high-impact skills float up.
const (
	weightImpact       = 0.4
	weightGap          = 0.3
	weightLearningTime = 0.2
	weightDependencies = 0.1
)

type Recommender struct {
	base *knowledge.Base
}

func NewRecommender(base *knowledge.Base) *Recommender {
	return &Recommender{base: base}
}

// RecommendSkills returns the skill gaps between the profile and the
// career path, ordered by priority subject to dependency constraints:
// any dependency that itself appears in the list occurs strictly earlier.
// The output is deterministic for identical inputs.
func (r *Recommender) RecommendSkills(p *domain.UserProfile, path *domain.CareerPath) []domain.SkillRecommendation {
	gaps := r.collectGaps(p, path)
	return orderByDependencies(gaps)
}

// GetHighestImpactSkill returns the highest-priority recommendation whose
// dependencies the user already satisfies, falling back to the first
// recommendation. Returns nil only for an empty recommendation list.
func (r *Recommender) GetHighestImpactSkill(p *domain.UserProfile, path *domain.CareerPath) *domain.SkillRecommendation {
	recs := r.RecommendSkills(p, path)
	if len(recs) == 0 {
		return nil
	}

	var best *domain.SkillRecommendation
	for i := range recs {
		if p == nil || !dependenciesSatisfied(p, recs[i].Dependencies) {
			continue
		}
		if best == nil || recs[i].Priority > best.Priority {
			best = &recs[i]
		}
	}
	if best == nil {
		best = &recs[0]
	}
	out := *best
	return &out
}

func dependenciesSatisfied(p *domain.UserProfile, deps []string) bool {
	for _, d := range deps {
		if !p.HasSkill(d) {
			return false
		}
	}
	return true
}

// collectGaps walks required and target skills in a stable order and
// keeps those where the current level falls short of the target.
func (r *Recommender) collectGaps(p *domain.UserProfile, path *domain.CareerPath) []domain.SkillRecommendation {
	type want struct {
		name   string
		target int
	}
	var wanted []want
	seen := make(map[string]bool)

	if path != nil {
		for _, name := range path.RequiredSkills {
			key := strings.ToLower(name)
			if !seen[key] {
				seen[key] = true
				wanted = append(wanted, want{name: name, target: DefaultTargetLevel})
			}
		}
	}
	if p != nil {
		for _, t := range p.Skills.Target {
			key := strings.ToLower(t.Name)
			target := t.Level
			if target <= 0 {
				target = DefaultTargetLevel
			}
			if !seen[key] {
				seen[key] = true
				wanted = append(wanted, want{name: t.Name, target: target})
			}
		}
	}

	var out []domain.SkillRecommendation
	for _, w := range wanted {
		current := 0
		if p != nil {
			current, _ = p.CurrentSkillLevel(w.name)
		}
		if current >= w.target {
			continue
		}
		out = append(out, r.buildRecommendation(w.name, current, w.target, path))
	}
	return out
}

func (r *Recommender) buildRecommendation(name string, current, target int, path *domain.CareerPath) domain.SkillRecommendation {
	meta, _ := r.base.Skill(name)
	gap := target - current
	months := estimatedMonths(meta.BaseLearningMonths, gap)

	return domain.SkillRecommendation{
		Skill:             meta.Name,
		Priority:          priorityScore(meta.Impact, gap, months, len(meta.Dependencies)),
		Reasoning:         reasoning(meta.Name, current, target, path),
		LearningResources: append([]string(nil), meta.Resources...),
		EstimatedTime:     fmt.Sprintf("%d months", months),
		Dependencies:      append([]string(nil), meta.Dependencies...),
		CurrentLevel:      current,
		TargetLevel:       target,
	}
}

// estimatedMonths scales the base learning time by how far the user has
// to climb relative to the default target band.
func estimatedMonths(baseMonths, gap int) int {
	months := (baseMonths*gap + DefaultTargetLevel - 1) / DefaultTargetLevel
	if months < 1 {
		months = 1
	}
	return months
}

func priorityScore(impact float64, gap, months, depCount int) float64 {
	timeFactor := float64(months) / 12
	if timeFactor > 1 {
		timeFactor = 1
	}
	depFactor := float64(depCount) / 5
	if depFactor > 1 {
		depFactor = 1
	}
	return weightImpact*impact +
		weightGap*float64(gap)/10 +
		weightLearningTime*(1-timeFactor) +
		weightDependencies*(1-depFactor)
}

func reasoning(name string, current, target int, path *domain.CareerPath) string {
	if path != nil && path.Title != "" {
		return fmt.Sprintf("%s is required for the %s path; you're at level %d of %d.", name, path.Title, current, target)
	}
	return fmt.Sprintf("%s closes a gap between your current level %d and target %d.", name, current, target)
}

// orderByDependencies applies Kahn-style ordering: each round selects
// every skill whose in-list dependencies are already placed, highest
// priority first. When a dependency cycle leaves no skill ready, the
// highest-priority remaining skill is force-selected; it leaves the
// remaining set immediately, so each skill is forced at most once and the
// loop always terminates.
func orderByDependencies(recs []domain.SkillRecommendation) []domain.SkillRecommendation {
	if len(recs) < 2 {
		return recs
	}

	inList := make(map[string]bool, len(recs))
	for _, rec := range recs {
		inList[strings.ToLower(rec.Skill)] = true
	}

	placed := make(map[string]bool, len(recs))
	remaining := append([]domain.SkillRecommendation(nil), recs...)
	out := make([]domain.SkillRecommendation, 0, len(recs))

	ready := func(rec domain.SkillRecommendation) bool {
		for _, dep := range rec.Dependencies {
			key := strings.ToLower(dep)
			if inList[key] && !placed[key] {
				return false
			}
		}
		return true
	}

	for len(remaining) > 0 {
		var batch []domain.SkillRecommendation
		var rest []domain.SkillRecommendation
		for _, rec := range remaining {
			if ready(rec) {
				batch = append(batch, rec)
			} else {
				rest = append(rest, rec)
			}
		}

		if len(batch) == 0 {
			// Dependency cycle: force the highest-priority skill out.
			idx := 0
			for i := 1; i < len(rest); i++ {
				if rest[i].Priority > rest[idx].Priority {
					idx = i
				}
			}
			batch = append(batch, rest[idx])
			rest = append(rest[:idx], rest[idx+1:]...)
		}

		sort.SliceStable(batch, func(i, j int) bool {
			return batch[i].Priority > batch[j].Priority
		})
		for _, rec := range batch {
			placed[strings.ToLower(rec.Skill)] = true
			out = append(out, rec)
		}
		remaining = rest
	}
	return out
}
