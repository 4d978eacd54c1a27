package intent

import (
	"regexp"
	"strings"

	"github.com/jmallard/compass/internal/domain"
)

// emotionPattern pairs a regex with a severity weight and the indicator
// label it contributes. Negative emotions are weighted 0.6-0.9, positive
// ones 0.3 so they register without escalating severity.
type emotionPattern struct {
	re        *regexp.Regexp
	weight    float64
	indicator string
}

var emotionPatterns = []emotionPattern{
	{rx(`\boverwhelm(?:ed|ing)?\b`), 0.8, "overwhelm"},
	{rx(`\b(?:too much|can'?t keep up|drowning)\b`), 0.7, "overwhelm"},
	{rx(`\bstuck\b`), 0.7, "stagnation"},
	{rx(`\b(?:going nowhere|dead[- ]end|plateau(?:ed)?)\b`), 0.7, "stagnation"},
	{rx(`\b(?:lost|confused|don'?t know|no idea|unsure)\b`), 0.7, "confusion"},
	{rx(`\b(?:anxious|anxiety|worried|nervous)\b`), 0.75, "anxiety"},
	{rx(`\b(?:frustrat(?:ed|ing)|annoyed|fed up)\b`), 0.7, "frustration"},
	{rx(`\b(?:scared|afraid|terrified|fear)\b`), 0.8, "fear"},
	{rx(`\b(?:hopeless|pointless|give up|giving up)\b`), 0.9, "hopelessness"},
	{rx(`\b(?:burn(?:ed|t)[- ]?out|exhausted|drained)\b`), 0.85, "burnout"},
	{rx(`\bstress(?:ed|ful)?\b`), 0.75, "stress"},
	{rx(`\b(?:not good enough|imposter|doubt myself|inadequate)\b`), 0.8, "self-doubt"},
	{rx(`\b(?:excited|thrilled|motivated|energized)\b`), 0.3, "excitement"},
	{rx(`\b(?:confident|proud|optimistic|happy)\b`), 0.3, "positivity"},
}

var emphaticPunctuation = regexp.MustCompile(`[!?]{2,}`)

// DetectEmotionalContent scores the emotional weight of a message.
// Severity is the weighted pattern sum halved and capped at 1.
func DetectEmotionalContent(message string) domain.EmotionalSignal {
	var sum float64
	var indicators []string
	seen := make(map[string]bool)

	for _, p := range emotionPatterns {
		if !p.re.MatchString(message) {
			continue
		}
		sum += p.weight
		if !seen[p.indicator] {
			seen[p.indicator] = true
			indicators = append(indicators, p.indicator)
		}
	}

	if emphaticPunctuation.MatchString(message) {
		sum += 0.2
		if !seen["emphasis"] {
			indicators = append(indicators, "emphasis")
		}
	}

	severity := sum / 2
	if severity > 1 {
		severity = 1
	}
	return domain.EmotionalSignal{
		HasEmotionalContent: len(indicators) > 0,
		Indicators:          indicators,
		Severity:            severity,
	}
}

// keywordPatterns is precompiled at init so keyword scoring is a read-only
// lookup and safe under concurrent requests.
var keywordPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, lex := range categoryLexicons {
		for _, kw := range lex.keywords {
			if _, ok := keywordPatterns[kw]; !ok {
				keywordPatterns[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
			}
		}
	}
}

func containsWord(message, word string) bool {
	return keywordPatterns[word].MatchString(message)
}
