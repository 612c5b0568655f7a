package allocator

import "time"

// partitionMembers walks the ranked list once and splits it into the fixed
// core and the variable pool, both in rank order. A member becomes fixed
// iff the pool still has room, they are available on every event date, and
// their cap covers the whole period. The selection is greedy by rank: the
// pool slots go to the highest-ranked fully-available members, not to the
// members with the broadest availability.
func partitionMembers(states []*MemberState, period []time.Time, poolSize int) (fixed, variable []*MemberState) {
	for _, s := range states {
		if len(fixed) < poolSize && availableEveryDay(s, period) && s.Cap >= len(period) {
			s.Fixed = true
			fixed = append(fixed, s)
			continue
		}
		variable = append(variable, s)
	}
	return fixed, variable
}

func availableEveryDay(s *MemberState, period []time.Time) bool {
	if len(period) == 0 {
		return false
	}
	for _, d := range period {
		if !s.Availability[d.Format(DateLayout)] {
			return false
		}
	}
	return true
}
