package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmallard/compass/internal/domain"
)

var (
	yearsOfExperienceRe = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*years?\b(?:[^.]*\bexperience\b)`)
	monthsRe            = regexp.MustCompile(`(?i)\b(\d{1,2})\s*months?\b`)
	yearsRe             = regexp.MustCompile(`(?i)\b(\d{1,2})\s*years?\b`)
)

// extractEntities scans for known skill names, career field names, time
// references, and "N years of experience" phrases. Fields are only set
// when a pattern matched.
func (r *Recognizer) extractEntities(message string) domain.Entities {
	var out domain.Entities
	lower := strings.ToLower(message)

	for _, field := range r.base.FieldNames() {
		if strings.Contains(lower, strings.ToLower(field)) {
			out.CareerFields = append(out.CareerFields, field)
		}
	}
	for _, skill := range r.base.SkillNames() {
		if containsName(lower, skill) {
			out.Skills = append(out.Skills, skill)
		}
	}

	out.Timeframe = extractTimeframe(lower)

	if m := yearsOfExperienceRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			out.YearsOfExperience = &n
		}
	}

	if sig := DetectEmotionalContent(message); sig.HasEmotionalContent {
		out.Emotional = &sig
	}
	return out
}

func extractTimeframe(lower string) *domain.TimeHorizon {
	switch {
	case strings.Contains(lower, "today"):
		return &domain.TimeHorizon{Ref: domain.TimeframeToday}
	case strings.Contains(lower, "this week"):
		return &domain.TimeHorizon{Ref: domain.TimeframeThisWeek}
	case strings.Contains(lower, "this month"):
		return &domain.TimeHorizon{Ref: domain.TimeframeThisMonth}
	}
	if m := monthsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &domain.TimeHorizon{Months: n}
		}
	}
	if m := yearsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &domain.TimeHorizon{Months: n * 12}
		}
	}
	return nil
}

// containsName matches a multi-word name on rough word boundaries without
// compiling a regex per knowledge-base entry.
func containsName(lower, name string) bool {
	needle := strings.ToLower(name)
	idx := strings.Index(lower, needle)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordChar(lower[idx-1])
		end := idx + len(needle)
		afterOK := end >= len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(lower[idx+1:], needle)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
