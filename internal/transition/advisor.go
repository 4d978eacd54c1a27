// Package transition plans moves between career fields: which existing
// skills carry over, what has to be learned, and how hard the move is.
package transition

import (
	"fmt"
	"strings"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
)

// Transferability base scores by how a skill relates to the two fields.
const (
	transferCore       = 1.0 // appears in the target field's core skills
	transferUniversal  = 0.9
	transferSourceOnly = 0.3
	transferBaseline   = 0.6

	keepScaledAbove = 0.3
	keepBaseAbove   = 0.4
)

// Difficulty scoring weights and thresholds.
const (
	weightTransferGap   = 0.3
	weightSkillGap      = 0.4
	weightFieldDistance = 0.3

	easyBelow     = 0.4
	moderateBelow = 0.7
)

// Duration model.
const (
	easyBaseMonths        = 6
	moderateBaseMonths    = 12
	challengingBaseMonths = 18

	monthsPerSkill    = 2
	maxSkillMonths    = 12
	durationRangeSpan = 3
)

// Advisor builds transition plans against the static field tables.
type Advisor struct {
	base *knowledge.Base
}

func NewAdvisor(base *knowledge.Base) *Advisor {
	return &Advisor{base: base}
}

// GenerateTransitionPlan assesses a move from sourceField to targetField
// for the given profile. Unrecognized fields fall back to a generic
// field profile so a plan is always produced, but their difficulty is
// assessed conservatively.
func (a *Advisor) GenerateTransitionPlan(sourceField, targetField string, p *domain.UserProfile) domain.TransitionPlan {
	source, sourceKnown := a.base.Field(sourceField)
	target, targetKnown := a.base.Field(targetField)

	transferable := a.scoreTransferable(p, source, target, targetField)
	toAcquire := skillsToAcquire(p, target, targetField)

	avgTransfer := averageTransferability(transferable)
	// The generic fallback invents core skills; an unrecognized field
	// gives no basis for a gap or similarity estimate, so assume the
	// full gap and no overlap.
	gapRatio := 1.0
	if targetKnown && len(target.CoreSkills) > 0 {
		gapRatio = float64(len(toAcquire)) / float64(len(target.CoreSkills))
	}
	similarity := 0.0
	if sourceKnown && targetKnown {
		similarity = fieldSimilarity(source, target)
	}

	score := weightTransferGap*(1-avgTransfer) +
		weightSkillGap*gapRatio +
		weightFieldDistance*(1-similarity)
	difficulty := classify(score)

	years := 0
	if p != nil {
		years = p.Personal.YearsOfExperience
	}
	duration, mean := estimateDuration(difficulty, len(toAcquire), years)

	return domain.TransitionPlan{
		SourceField:        sourceField,
		TargetField:        targetField,
		TransferableSkills: transferable,
		SkillsToAcquire:    toAcquire,
		Phases:             buildPhases(difficulty, targetField, toAcquire, mean),
		EstimatedDuration:  duration,
		Difficulty:         difficulty,
		Risks:              assembleRisks(difficulty, len(toAcquire), avgTransfer, years),
		SuccessFactors:     assembleSuccessFactors(len(toAcquire), avgTransfer, years),
	}
}

// scoreTransferable rates each current skill against the target field.
// Scores scale with proficiency; weakly relevant, weakly held skills are
// dropped.
func (a *Advisor) scoreTransferable(p *domain.UserProfile, source, target knowledge.FieldMeta, targetField string) []domain.TransferableSkill {
	if p == nil {
		return nil
	}

	var out []domain.TransferableSkill
	for _, s := range p.Skills.Current {
		base, reason := a.baseTransferability(s.Name, source, target, targetField)

		levelFactor := float64(s.Level) / 5
		if levelFactor > 1 {
			levelFactor = 1
		}
		scaled := base * levelFactor

		if scaled <= keepScaledAbove && base <= keepBaseAbove {
			continue
		}
		out = append(out, domain.TransferableSkill{
			Name:            s.Name,
			Level:           s.Level,
			Transferability: scaled,
			Reasoning:       reason,
		})
	}
	return out
}

func (a *Advisor) baseTransferability(skill string, source, target knowledge.FieldMeta, targetField string) (float64, string) {
	if containsFold(target.CoreSkills, skill) {
		return transferCore, fmt.Sprintf("%s is a core skill in %s.", skill, targetField)
	}
	if a.base.IsUniversalSkill(skill) {
		return transferUniversal, fmt.Sprintf("%s carries over to almost any field, including %s.", skill, targetField)
	}
	if containsFold(source.CoreSkills, skill) {
		return transferSourceOnly, fmt.Sprintf("%s is specific to your current field and transfers only partially.", skill)
	}
	return transferBaseline, fmt.Sprintf("%s provides a useful general foundation for %s.", skill, targetField)
}

// skillsToAcquire lists target core skills the profile does not have yet.
func skillsToAcquire(p *domain.UserProfile, target knowledge.FieldMeta, targetField string) []domain.SkillToAcquire {
	var out []domain.SkillToAcquire
	for _, core := range target.CoreSkills {
		if p != nil && p.HasSkill(core) {
			continue
		}
		out = append(out, domain.SkillToAcquire{
			Name:      core,
			Reasoning: fmt.Sprintf("%s is a core requirement for roles in %s.", core, targetField),
		})
	}
	return out
}

func averageTransferability(skills []domain.TransferableSkill) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range skills {
		sum += s.Transferability
	}
	return sum / float64(len(skills))
}

// fieldSimilarity is the core-skill overlap of the two fields relative
// to the larger core set.
func fieldSimilarity(source, target knowledge.FieldMeta) float64 {
	larger := len(source.CoreSkills)
	if len(target.CoreSkills) > larger {
		larger = len(target.CoreSkills)
	}
	if larger == 0 {
		return 0
	}
	shared := 0
	for _, s := range source.CoreSkills {
		if containsFold(target.CoreSkills, s) {
			shared++
		}
	}
	return float64(shared) / float64(larger)
}

func classify(score float64) domain.DifficultyLevel {
	switch {
	case score < easyBelow:
		return domain.DifficultyEasy
	case score < moderateBelow:
		return domain.DifficultyModerate
	default:
		return domain.DifficultyChallenging
	}
}

// estimateDuration computes the expected timeline as a range around a
// mean month count. Easy transitions never stretch past 18 months at
// the high end; challenging ones never promise less than 15.
func estimateDuration(difficulty domain.DifficultyLevel, skillGap, years int) (string, int) {
	base := challengingBaseMonths
	switch difficulty {
	case domain.DifficultyEasy:
		base = easyBaseMonths
	case domain.DifficultyModerate:
		base = moderateBaseMonths
	}

	extra := skillGap * monthsPerSkill
	if extra > maxSkillMonths {
		extra = maxSkillMonths
	}

	multiplier := 1.0
	switch {
	case years >= 5:
		multiplier = 0.8
	case years >= 3:
		multiplier = 0.9
	}

	mean := int(float64(base+extra) * multiplier)
	switch difficulty {
	case domain.DifficultyEasy:
		if mean > easyBaseMonths+durationRangeSpan*3 {
			mean = easyBaseMonths + durationRangeSpan*3
		}
	case domain.DifficultyChallenging:
		if mean < moderateBaseMonths {
			mean = moderateBaseMonths
		}
	}

	lo := mean - durationRangeSpan
	if lo < 1 {
		lo = 1
	}
	return fmt.Sprintf("%d-%d months", lo, mean+durationRangeSpan), mean
}

// buildPhases lays out 1, 2, or 3 phases depending on difficulty.
func buildPhases(difficulty domain.DifficultyLevel, targetField string, toAcquire []domain.SkillToAcquire, meanMonths int) []domain.TransitionPhase {
	skillNames := make([]string, len(toAcquire))
	for i, s := range toAcquire {
		skillNames[i] = s.Name
	}
	skillList := "the field's core skills"
	if len(skillNames) > 0 {
		skillList = strings.Join(skillNames, ", ")
	}

	prepare := domain.TransitionPhase{
		Name:     "Preparation",
		Duration: fmt.Sprintf("%d months", phaseMonths(meanMonths, difficulty, 0)),
		Focus:    fmt.Sprintf("Understand %s and close the most urgent gaps", targetField),
		Actions: []string{
			fmt.Sprintf("Talk to three people working in %s about what the work is really like", targetField),
			fmt.Sprintf("Start learning: %s", skillList),
		},
		SuccessCriteria: []string{
			fmt.Sprintf("You can describe a typical week in %s", targetField),
			"You have a learning routine in place",
		},
	}
	build := domain.TransitionPhase{
		Name:     "Skill Building",
		Duration: fmt.Sprintf("%d months", phaseMonths(meanMonths, difficulty, 1)),
		Focus:    "Reach working proficiency and build proof of ability",
		Actions: []string{
			fmt.Sprintf("Complete a project demonstrating %s", skillList),
			"Collect your work into a portfolio you can show",
		},
		SuccessCriteria: []string{
			"A finished project you can walk someone through",
			"Positive feedback from someone already in the field",
		},
	}
	land := domain.TransitionPhase{
		Name:     "Transition",
		Duration: fmt.Sprintf("%d months", phaseMonths(meanMonths, difficulty, 2)),
		Focus:    fmt.Sprintf("Move into a %s role", targetField),
		Actions: []string{
			fmt.Sprintf("Apply to %s roles that value your transferable background", targetField),
			"Tailor your story to explain the move in interviews",
		},
		SuccessCriteria: []string{
			"Active interview pipeline in the target field",
			"An offer or internal transfer agreement",
		},
	}

	switch difficulty {
	case domain.DifficultyEasy:
		land.Actions = append(prepare.Actions[:1:1], land.Actions...)
		return []domain.TransitionPhase{land}
	case domain.DifficultyModerate:
		return []domain.TransitionPhase{prepare, land}
	default:
		return []domain.TransitionPhase{prepare, build, land}
	}
}

// phaseMonths splits the mean duration across the phases a difficulty
// level uses, front-loading nothing: equal shares, remainder to the
// final phase.
func phaseMonths(mean int, difficulty domain.DifficultyLevel, idx int) int {
	count := 3
	switch difficulty {
	case domain.DifficultyEasy:
		count = 1
	case domain.DifficultyModerate:
		count = 2
	}
	share := mean / count
	if share < 1 {
		share = 1
	}
	if idx == count-1 {
		if rest := mean - share*count; rest > 0 {
			share += rest
		}
	}
	return share
}

func assembleRisks(difficulty domain.DifficultyLevel, skillGap int, avgTransfer float64, years int) []string {
	var out []string
	if difficulty == domain.DifficultyChallenging {
		out = append(out, "This is a substantial change; progress may feel slow in the first months.")
	}
	if skillGap >= 3 {
		out = append(out, fmt.Sprintf("You need %d new core skills, which demands sustained learning time.", skillGap))
	}
	if avgTransfer < 0.5 {
		out = append(out, "Little of your current experience transfers directly, so expect to start from fundamentals.")
	}
	if years < 2 {
		out = append(out, "With limited overall experience, employers may weigh potential over track record.")
	}
	if len(out) == 0 {
		out = append(out, "Any transition carries opportunity cost; keep your current role stable while you prepare.")
	}
	return out
}

func assembleSuccessFactors(skillGap int, avgTransfer float64, years int) []string {
	var out []string
	if avgTransfer >= 0.7 {
		out = append(out, "Most of your existing skills carry over strongly.")
	}
	if years >= 5 {
		out = append(out, "Your experience gives you credibility and judgment newcomers lack.")
	}
	if skillGap <= 2 {
		out = append(out, "The skill gap is small enough to close while still employed.")
	}
	out = append(out, "A consistent weekly learning habit is the single best predictor of a successful move.")
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
