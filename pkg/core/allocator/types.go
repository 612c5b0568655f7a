package allocator

import (
	"time"

	"github.com/kazuyat/siege-roster/pkg/core/model"
)

// DateLayout is the key format used for everything date-indexed in a run
const DateLayout = "2006-01-02"

// Mode selects the tie-break policy used when filling variable slots
type Mode string

const (
	// ModePowerPriority fills variable slots in global rank order
	// (progress, then power)
	ModePowerPriority Mode = "power"

	// ModeEqualOpportunity fills variable slots lowest participation
	// count first, falling back to rank order
	ModeEqualOpportunity Mode = "equal"
)

func (m Mode) IsValid() bool {
	return m == ModePowerPriority || m == ModeEqualOpportunity
}

// SlotStatus records the outcome for one member on one event day
type SlotStatus string

const (
	// StatusFixed marks a guaranteed daily participant
	StatusFixed SlotStatus = "fixed"

	// StatusSelected marks a variable member who won a slot that day
	StatusSelected SlotStatus = "selected"

	// StatusStandby marks an eligible variable member who lost out on
	// capacity, not on eligibility
	StatusStandby SlotStatus = "standby"

	// StatusUnavailable marks a member not available that day
	StatusUnavailable SlotStatus = "unavailable"

	// StatusCapReached marks an available member whose participation cap
	// is already spent
	StatusCapReached SlotStatus = "cap-reached"
)

// Progress is the ordering key parsed from free-text stage progress
type Progress struct {
	Major int
	Minor int
}

// Less reports whether p ranks strictly below other
func (p Progress) Less(other Progress) bool {
	if p.Major != other.Major {
		return p.Major < other.Major
	}
	return p.Minor < other.Minor
}

// Config carries everything a single allocation run needs. The member
// snapshot is read-only to the allocator; all mutable run state lives on
// working copies.
type Config struct {
	// Members is the roster snapshot, in sheet order
	Members []model.Member

	// Period is the ordered list of event dates, as built by BuildPeriod
	Period []time.Time

	// DailySize is the target team size per day
	DailySize int

	// FixedPoolSize caps how many top-ranked fully-available members
	// become permanent daily participants
	FixedPoolSize int

	Mode Mode

	// PreferConditional, in power-priority mode, pulls members who
	// answered with specific dates ahead of always-available members on
	// the days they offered
	PreferConditional bool
}

// MemberState is the allocator's per-run working copy of one member.
// Count and Status are the only fields mutated during a run.
type MemberState struct {
	Name         string
	Progress     Progress
	Power        float64
	Answer       model.Answer
	Availability map[string]bool
	Cap          int
	Fixed        bool

	// Count is the running number of days assigned so far
	Count int

	// Status maps date key to the member's outcome on that day
	Status map[string]SlotStatus
}

// Result is the outcome of one allocation run
type Result struct {
	// Dates is the event period the run covered, as ordered date keys
	Dates []string

	// Rosters maps date key to the ordered names assigned that day.
	// Fixed members always lead the list, in rank order.
	Rosters map[string][]string

	// Fixed lists the permanent daily members, in rank order
	Fixed []string

	// Members holds every working copy with final counts and the full
	// per-day status matrix, in rank order
	Members []*MemberState
}

// Roster returns the assigned names for the given date key
func (r *Result) Roster(date string) []string {
	return r.Rosters[date]
}
