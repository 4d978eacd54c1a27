package analyzer

import (
	"regexp"

	"github.com/jmallard/compass/internal/domain"
)

type challengeLexicon struct {
	kind     domain.ChallengeType
	patterns []*regexp.Regexp
}

func crx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// Ordered so the first matching lexicon wins; more specific struggles come
// before the catch-all direction bucket.
var challengeLexicons = []challengeLexicon{
	{domain.ChallengeOverwhelm, []*regexp.Regexp{
		crx(`\boverwhelm`), crx(`\btoo (?:much|many)\b`), crx(`\bburn(?:ed|t)?[- ]?out\b`), crx(`\bexhausted\b`),
	}},
	{domain.ChallengeConfidence, []*regexp.Regexp{
		crx(`\bconfiden`), crx(`\bimposter\b`), crx(`\bnot good enough\b`), crx(`\bdoubt\b`), crx(`\bafraid\b`),
	}},
	{domain.ChallengeStagnation, []*regexp.Regexp{
		crx(`\bstagnat`), crx(`\bstuck\b`), crx(`\bplateau`), crx(`\bdead[- ]end\b`), crx(`\bno growth\b`), crx(`\bsame (?:role|job|thing)\b`),
	}},
	{domain.ChallengeTransition, []*regexp.Regexp{
		crx(`\btransition\b`), crx(`\bswitch`), crx(`\bchange (?:career|field|industr)`), crx(`\bpivot\b`), crx(`\bmove into\b`),
	}},
	{domain.ChallengeSkills, []*regexp.Regexp{
		crx(`\bskills?\b`), crx(`\blearn`), crx(`\bqualifi`), crx(`\bexperience gap\b`), crx(`\bbehind\b`),
	}},
	{domain.ChallengeDirection, []*regexp.Regexp{
		crx(`\bdirection\b`), crx(`\bdon'?t know\b`), crx(`\bunsure\b`), crx(`\blost\b`), crx(`\bclarity\b`), crx(`\bwhat (?:to do|i want)\b`),
	}},
}

// CategorizeChallenge classifies free-text struggle descriptions into one
// of the six challenge types. Unmatchable text falls back to direction.
func CategorizeChallenge(text string) domain.ChallengeType {
	for _, lex := range challengeLexicons {
		for _, re := range lex.patterns {
			if re.MatchString(text) {
				return lex.kind
			}
		}
	}
	return domain.ChallengeDirection
}
