package allocator

import (
	"sort"
	"time"

	"github.com/kazuyat/siege-roster/pkg/core/model"
)

// newMemberStates builds the per-run working copies from the roster
// snapshot, parsing rank fields and resolving availability. Input order is
// preserved so that the later stable sort keeps sheet order among exact
// rank ties.
func newMemberStates(members []model.Member, period []time.Time) []*MemberState {
	states := make([]*MemberState, 0, len(members))

	for _, m := range members {
		dayCap := m.Cap
		if dayCap <= 0 {
			dayCap = len(period)
		}

		states = append(states, &MemberState{
			Name:         m.Name,
			Progress:     ParseProgress(m.Progress),
			Power:        ParsePower(m.Power),
			Answer:       m.Answer,
			Availability: ResolveAvailability(m, period),
			Cap:          dayCap,
			Status:       make(map[string]SlotStatus, len(period)),
		})
	}

	return states
}

// rankMembers sorts working copies descending by (progress major, progress
// minor, power). The sort is stable so identical keys keep insertion order
// and repeat runs are reproducible.
func rankMembers(states []*MemberState) {
	sort.SliceStable(states, func(i, j int) bool {
		return rankLess(states[j], states[i])
	})
}

// rankLess reports whether a ranks strictly below b on the composite key
func rankLess(a, b *MemberState) bool {
	if a.Progress != b.Progress {
		return a.Progress.Less(b.Progress)
	}
	return a.Power < b.Power
}
