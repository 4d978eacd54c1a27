package intent

import (
	"regexp"

	"github.com/jmallard/compass/internal/domain"
)

// lexicon holds the scoring vocabulary for one intent category. Keyword
// hits score 1, phrase hits score 2.
type lexicon struct {
	keywords []string
	phrases  []*regexp.Regexp
}

func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

var categoryLexicons = map[domain.IntentType]lexicon{
	domain.IntentProfileBuilding: {
		keywords: []string{"background", "experience", "profile", "myself", "introduce", "currently", "role"},
		phrases: []*regexp.Regexp{
			rx(`\bi(?:'m| am) (?:a|an|currently)\b`),
			rx(`\bmy background\b`),
			rx(`\bi work (?:as|at|in)\b`),
			rx(`\byears of experience\b`),
		},
	},
	domain.IntentCareerClarity: {
		keywords: []string{"career", "direction", "path", "options", "purpose", "fit"},
		phrases: []*regexp.Regexp{
			rx(`\bwhat career\b`),
			rx(`\bwhich (?:path|direction)\b`),
			rx(`\bdon'?t know what\b`),
			rx(`\bfigure out what\b`),
			rx(`\bright (?:for me|fit)\b`),
			rx(`\bwhat should i do with\b`),
		},
	},
	domain.IntentSkillGuidance: {
		keywords: []string{"learn", "skill", "skills", "course", "study", "improve", "practice"},
		phrases: []*regexp.Regexp{
			rx(`\bwhat (?:should|do) i learn\b`),
			rx(`\bhow (?:do|can) i learn\b`),
			rx(`\bget better at\b`),
			rx(`\bwhich skills?\b`),
			rx(`\bwhat to learn\b`),
		},
	},
	domain.IntentActionPlanning: {
		keywords: []string{"plan", "steps", "start", "begin", "actions", "first"},
		phrases: []*regexp.Regexp{
			rx(`\bnext steps?\b`),
			rx(`\bwhere (?:do|should) i start\b`),
			rx(`\baction plan\b`),
			rx(`\bwhat should i do (?:today|now|this week|first)\b`),
			rx(`\bget started\b`),
		},
	},
	domain.IntentMindsetSupport: {
		keywords: []string{"overwhelmed", "anxious", "scared", "confidence", "doubt", "stuck", "worried", "imposter"},
		phrases: []*regexp.Regexp{
			rx(`\bi feel\b`),
			rx(`\bfeeling (?:like|lost|stuck)\b`),
			rx(`\bnot good enough\b`),
			rx(`\bafraid (?:of|that|to)\b`),
			rx(`\bcan'?t (?:do|handle)\b`),
		},
	},
	domain.IntentGrowthPlanning: {
		keywords: []string{"grow", "growth", "roadmap", "future", "milestones", "senior", "advance"},
		phrases: []*regexp.Regexp{
			rx(`\blong[- ]term\b`),
			rx(`\bgrowth plan\b`),
			rx(`\bin (?:5|five|10|ten) years\b`),
			rx(`\bbecome (?:a|an) senior\b`),
			rx(`\bwhere do i want to be\b`),
		},
	},
	domain.IntentTransitionGuidance: {
		keywords: []string{"transition", "switch", "pivot", "move", "industry", "field"},
		phrases: []*regexp.Regexp{
			rx(`\bchange (?:my )?career\b`),
			rx(`\bcareer change\b`),
			rx(`\bswitch (?:from|to|into|careers?)\b`),
			rx(`\bmove into\b`),
			rx(`\bbreak into\b`),
			rx(`\bleave (?:my )?(?:job|field|industry)\b`),
		},
	},
	domain.IntentProgressCheck: {
		keywords: []string{"progress", "completed", "finished", "done", "update", "accomplished"},
		phrases: []*regexp.Regexp{
			rx(`\bhow am i doing\b`),
			rx(`\bcheck[- ]?in\b`),
			rx(`\bi (?:completed|finished|did)\b`),
			rx(`\bso far\b`),
			rx(`\bsince (?:last|we) (?:time|talked)\b`),
		},
	},
}
