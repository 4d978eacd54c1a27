package actions

import (
	"fmt"

	"github.com/jmallard/compass/internal/domain"
)

// GenerateProgressAcknowledgment produces a short acknowledgment for
// recently completed steps, empty for no completions. At 5+ and 10+
// lifetime completions a cumulative momentum note is added.
func GenerateProgressAcknowledgment(completed []domain.ActionStep, p *domain.UserProfile) string {
	if len(completed) == 0 {
		return ""
	}

	var msg string
	if len(completed) == 1 {
		msg = fmt.Sprintf("Nice work completing that %s step.", completed[0].Category)
	} else {
		msg = fmt.Sprintf("Great momentum — you completed %d steps.", len(completed))
	}

	if p != nil {
		total := len(p.Progress.CompletedActions)
		switch {
		case total >= 10:
			msg += fmt.Sprintf(" That's %d actions done overall; this is becoming a habit.", total)
		case total >= 5:
			msg += fmt.Sprintf(" You're up to %d actions overall — real progress.", total)
		}
	}
	return msg
}
