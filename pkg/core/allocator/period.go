package allocator

import "time"

// BuildPeriod expands an inclusive start..end range into the ordered list
// of event dates, normalized to midnight UTC. Dates for which exclude
// returns true are skipped (exclude may be nil). A range with end before
// start yields an empty period rather than an error; the allocator treats
// an empty period as a degenerate, well-defined run.
func BuildPeriod(start, end time.Time, exclude func(time.Time) bool) []time.Time {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var period []time.Time
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		if exclude != nil && exclude(d) {
			continue
		}
		period = append(period, d)
	}

	return period
}

// ExcludeWeekdays builds an exclusion predicate for BuildPeriod that skips
// the given weekdays (the classic variant skips Sundays)
func ExcludeWeekdays(weekdays ...time.Weekday) func(time.Time) bool {
	skip := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		skip[wd] = true
	}
	return func(d time.Time) bool {
		return skip[d.Weekday()]
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
