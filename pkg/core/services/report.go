package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kazuyat/siege-roster/pkg/core/allocator"
)

// BuildReport renders an allocation result as a plain text report with the
// fixed pool first and one per-day section per event date
func BuildReport(result *allocator.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fixed members (%d): %s\n", len(result.Fixed), joinOrDash(result.Fixed))

	for _, date := range result.Dates {
		roster := result.Roster(date)
		fmt.Fprintf(&b, "\n%s  %d members\n", formatDateHeading(date), len(roster))
		fmt.Fprintf(&b, "  %s\n", joinOrDash(roster))
	}

	return b.String()
}

// formatDateHeading renders a date as "01/15 (Thu)", falling back to the
// raw string when it does not parse
func formatDateHeading(date string) string {
	parsed, err := time.Parse(allocator.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", parsed.Format("01/02"), parsed.Format("Mon"))
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
