package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/kazuyat/siege-roster/pkg/core/allocator"
	"github.com/kazuyat/siege-roster/pkg/core/model"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// timestampLayout is the format used for updated_at and created_at columns
const timestampLayout = "2006-01-02 15:04:05"

// toModelMembers converts member database records into core members,
// normalizing free-text answers and splitting the specific dates column
func toModelMembers(records []db.Member) []model.Member {
	members := make([]model.Member, len(records))
	for i, rec := range records {
		members[i] = model.Member{
			Name:          rec.Name,
			Progress:      rec.Progress,
			Power:         rec.Power,
			Answer:        model.NormalizeAnswer(rec.Answer),
			SpecificDates: splitDates(rec.SpecificDates),
			Cap:           rec.Cap,
		}
	}
	return members
}

// splitDates splits a comma-separated date cell into trimmed date strings
func splitDates(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}

	parts := strings.Split(cell, ",")
	dates := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			dates = append(dates, trimmed)
		}
	}
	return dates
}

// exclusionFromRule builds a date exclusion predicate from a recurrence
// rule string. An empty rule excludes nothing.
func exclusionFromRule(ruleStr string, start, end time.Time) (func(time.Time) bool, error) {
	if strings.TrimSpace(ruleStr) == "" {
		return func(time.Time) bool { return false }, nil
	}

	rule, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid exclusion rule %q: %w", ruleStr, err)
	}

	// Anchor the rule at the period start so occurrences land inside it
	rule.DTStart(start.AddDate(0, 0, -1))

	excluded := make(map[string]bool)
	for _, occurrence := range rule.Between(start.AddDate(0, 0, -1), end.AddDate(0, 0, 1), true) {
		excluded[occurrence.Format(allocator.DateLayout)] = true
	}

	return func(date time.Time) bool {
		return excluded[date.Format(allocator.DateLayout)]
	}, nil
}
