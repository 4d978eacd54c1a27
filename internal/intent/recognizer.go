// Package intent classifies free-text user messages into one of eight
// intent categories using deterministic lexicon scoring, detects emotional
// content, and extracts entities against the knowledge base.
package intent

import (
	"strings"

	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/knowledge"
)

// MindsetSeverityThreshold is the emotional severity at or above which a
// reply must lead with mindset support.
const MindsetSeverityThreshold = 0.5

type Recognizer struct {
	base *knowledge.Base
}

func NewRecognizer(base *knowledge.Base) *Recognizer {
	return &Recognizer{base: base}
}

// Recognize classifies a message. It never fails: unmatchable messages
// default to career_clarity when the user is asking a question, otherwise
// profile_building.
func (r *Recognizer) Recognize(message string) domain.Intent {
	best, bestScore, keywordHits := scoreCategories(message)

	if bestScore == 0 {
		if strings.Contains(message, "?") {
			best = domain.IntentCareerClarity
		} else {
			best = domain.IntentProfileBuilding
		}
	}

	return domain.Intent{
		Type:       best,
		Confidence: confidence(message, keywordHits[best]),
		Entities:   r.extractEntities(message),
	}
}

// scoreCategories scores every category: +1 per keyword hit, +2 per phrase
// hit. Ties resolve to the first category in a fixed iteration order so
// classification stays deterministic.
func scoreCategories(message string) (domain.IntentType, int, map[domain.IntentType]int) {
	keywordHits := make(map[domain.IntentType]int, len(categoryOrder))

	var best domain.IntentType
	bestScore := 0
	for _, cat := range categoryOrder {
		lex := categoryLexicons[cat]
		score := 0
		for _, kw := range lex.keywords {
			if containsWord(message, kw) {
				score++
				keywordHits[cat]++
			}
		}
		for _, re := range lex.phrases {
			if re.MatchString(message) {
				score += 2
			}
		}
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}
	return best, bestScore, keywordHits
}

// confidence starts at 0.5, adds a message-length bonus (0.2 over 20
// words, 0.1 over 10), and 0.1 per matched keyword of the winning
// category, capped at 1.
func confidence(message string, keywordMatches int) float64 {
	c := 0.5
	words := len(strings.Fields(message))
	switch {
	case words > 20:
		c += 0.2
	case words > 10:
		c += 0.1
	}
	c += 0.1 * float64(keywordMatches)
	if c > 1 {
		c = 1
	}
	return c
}

// ShouldPrioritizeMindset reports whether the reply must lead with
// emotional acknowledgment before any tactical content.
func ShouldPrioritizeMindset(in domain.Intent) bool {
	if in.Type == domain.IntentMindsetSupport {
		return true
	}
	e := in.Entities.Emotional
	return e != nil && e.HasEmotionalContent && e.Severity >= MindsetSeverityThreshold
}

// categoryOrder fixes the scoring iteration order (map iteration is
// randomized).
var categoryOrder = []domain.IntentType{
	domain.IntentProfileBuilding,
	domain.IntentCareerClarity,
	domain.IntentSkillGuidance,
	domain.IntentActionPlanning,
	domain.IntentMindsetSupport,
	domain.IntentGrowthPlanning,
	domain.IntentTransitionGuidance,
	domain.IntentProgressCheck,
}
