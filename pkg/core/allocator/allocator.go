package allocator

import (
	"sort"

	"github.com/kazuyat/siege-roster/pkg/core/model"
)

// Allocate runs one full scheduling pass: rank the roster, split off the
// fixed core, then fill each day's remaining slots greedily from the
// variable pool under the configured tie-break mode.
//
// The run is deterministic for a given config and never fails: malformed
// rank fields degrade to the minimum rank, an empty roster or period yields
// an empty result. The snapshot in cfg.Members is never mutated; all
// counters and statuses live on the returned working copies.
func Allocate(cfg Config) *Result {
	states := newMemberStates(cfg.Members, cfg.Period)
	rankMembers(states)
	fixed, variable := partitionMembers(states, cfg.Period, cfg.FixedPoolSize)

	result := &Result{
		Dates:   make([]string, 0, len(cfg.Period)),
		Rosters: make(map[string][]string, len(cfg.Period)),
		Fixed:   make([]string, 0, len(fixed)),
		Members: states,
	}
	for _, fm := range fixed {
		result.Fixed = append(result.Fixed, fm.Name)
	}

	for _, date := range cfg.Period {
		key := date.Format(DateLayout)
		result.Dates = append(result.Dates, key)
		roster := make([]string, 0, cfg.DailySize)

		// Fixed members play unconditionally, caps and daily size
		// notwithstanding.
		for _, fm := range fixed {
			roster = append(roster, fm.Name)
			fm.Count++
			fm.Status[key] = StatusFixed
		}

		slots := cfg.DailySize - len(fixed)

		// Every variable member gets a status for every day, before any
		// slot is handed out.
		eligible := make([]*MemberState, 0, len(variable))
		for _, m := range variable {
			switch {
			case !m.Availability[key]:
				m.Status[key] = StatusUnavailable
			case m.Count >= m.Cap:
				m.Status[key] = StatusCapReached
			default:
				m.Status[key] = StatusStandby
				eligible = append(eligible, m)
			}
		}

		if slots > 0 {
			orderCandidates(eligible, cfg)
			if slots > len(eligible) {
				slots = len(eligible)
			}
			for _, c := range eligible[:slots] {
				roster = append(roster, c.Name)
				c.Count++
				c.Status[key] = StatusSelected
			}
		}

		result.Rosters[key] = roster
	}

	return result
}

// orderCandidates sorts the day's eligible candidates in place by the
// active mode's key. Power-priority mode keeps the pool's global rank
// order unless the conditional-first variant is on; equal-opportunity mode
// lifts members with fewer assignments so far.
func orderCandidates(eligible []*MemberState, cfg Config) {
	switch {
	case cfg.Mode == ModeEqualOpportunity:
		sort.SliceStable(eligible, func(i, j int) bool {
			if eligible[i].Count != eligible[j].Count {
				return eligible[i].Count < eligible[j].Count
			}
			return rankLess(eligible[j], eligible[i])
		})

	case cfg.PreferConditional:
		sort.SliceStable(eligible, func(i, j int) bool {
			ci := isConditional(eligible[i])
			cj := isConditional(eligible[j])
			if ci != cj {
				return ci
			}
			return rankLess(eligible[j], eligible[i])
		})
	}
}

func isConditional(m *MemberState) bool {
	return m.Answer == model.AnswerConditional
}
