package paths

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jmallard/compass/internal/domain"
)

var transitionRangeRe = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*months`)

// MeanTransitionMonths parses a "N-M months" range into its mean. The
// bool reports whether the string was parseable.
func MeanTransitionMonths(s string) (float64, bool) {
	m := transitionRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	lo, err1 := strconv.Atoi(m[1])
	hi, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return float64(lo+hi) / 2, true
}

// IdentifyTradeOffs appends comparative notes to each path's reasoning
// when there is more than one path: who wins on fit, transition speed,
// and growth, and how the others compare to that winner.
func IdentifyTradeOffs(list []domain.CareerPath) []domain.CareerPath {
	if len(list) < 2 {
		return list
	}

	bestFit := 0
	fastest := -1
	highestGrowth := 0
	var fastestMonths float64
	for i, p := range list {
		if p.FitScore > list[bestFit].FitScore {
			bestFit = i
		}
		if p.GrowthPotential > list[highestGrowth].GrowthPotential {
			highestGrowth = i
		}
		if months, ok := MeanTransitionMonths(p.TimeToTransition); ok {
			if fastest == -1 || months < fastestMonths {
				fastest = i
				fastestMonths = months
			}
		}
	}

	out := make([]domain.CareerPath, len(list))
	copy(out, list)
	for i := range out {
		var notes []string
		if i == bestFit {
			notes = append(notes, "Best overall fit of these options.")
		} else {
			notes = append(notes, fmt.Sprintf("%s scores a better overall fit.", out[bestFit].Title))
		}
		if fastest >= 0 {
			if i == fastest {
				notes = append(notes, "Fastest of these to transition into.")
			} else if _, ok := MeanTransitionMonths(out[i].TimeToTransition); ok {
				notes = append(notes, fmt.Sprintf("%s would be quicker to reach.", out[fastest].Title))
			}
		}
		if i == highestGrowth {
			notes = append(notes, "Highest long-term growth potential.")
		} else {
			notes = append(notes, fmt.Sprintf("%s offers more long-term growth.", out[highestGrowth].Title))
		}

		for _, n := range notes {
			out[i].Reasoning += " " + n
		}
	}
	return out
}
