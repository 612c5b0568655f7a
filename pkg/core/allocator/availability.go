package allocator

import (
	"time"

	"github.com/kazuyat/siege-roster/pkg/core/model"
)

// ResolveAvailability computes a member's per-date eligibility over the
// period. The returned map is total: every date in the period has an
// entry, so consumers never fall back to an implicit default.
//
// Always-available members get every date; declined and non-responding
// members get none. Conditional members get exactly the dates they listed;
// listed dates outside the period are ignored.
func ResolveAvailability(m model.Member, period []time.Time) map[string]bool {
	availability := make(map[string]bool, len(period))

	switch m.Answer {
	case model.AnswerAlwaysAvailable:
		for _, d := range period {
			availability[d.Format(DateLayout)] = true
		}

	case model.AnswerConditional:
		offered := make(map[string]bool, len(m.SpecificDates))
		for _, dateStr := range m.SpecificDates {
			offered[dateStr] = true
		}
		for _, d := range period {
			key := d.Format(DateLayout)
			availability[key] = offered[key]
		}

	default:
		// Declined and no-response members are never available
		for _, d := range period {
			availability[d.Format(DateLayout)] = false
		}
	}

	return availability
}
