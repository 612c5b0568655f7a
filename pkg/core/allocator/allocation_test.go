package allocator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuyat/siege-roster/pkg/core/model"
)

func testConfig(members []model.Member) Config {
	return Config{
		Members:       members,
		Period:        threeDayPeriod(),
		DailySize:     20,
		FixedPoolSize: 10,
		Mode:          ModePowerPriority,
	}
}

// alwaysMember builds a fully-available member with the given rank fields
func alwaysMember(name, progress, power string) model.Member {
	return model.Member{Name: name, Progress: progress, Power: power, Answer: model.AnswerAlwaysAvailable}
}

func TestAllocate_TwoFixedMembers(t *testing.T) {
	result := Allocate(testConfig([]model.Member{
		alwaysMember("B", "50-3", "1M"),
		alwaysMember("A", "50-3", "2M"),
	}))

	assert.Equal(t, []string{"A", "B"}, result.Fixed)

	for _, d := range result.Dates {
		assert.Equal(t, []string{"A", "B"}, result.Roster(d))
	}

	for _, m := range result.Members {
		assert.Equal(t, 3, m.Count)
		for _, d := range result.Dates {
			assert.Equal(t, StatusFixed, m.Status[d])
		}
	}
}

func TestAllocate_ConditionalMemberWithCap(t *testing.T) {
	// Fill the fixed pool exactly, leaving a single variable slot per day
	// for the one variable member.
	members := make([]model.Member, 0, 11)
	for i := 0; i < 10; i++ {
		members = append(members, alwaysMember(fmt.Sprintf("core-%02d", i), "55-0", "5M"))
	}
	members = append(members, model.Member{
		Name:          "daytwo",
		Progress:      "50-0",
		Power:         "1M",
		Answer:        model.AnswerConditional,
		SpecificDates: []string{"2025-04-02"},
		Cap:           1,
	})

	cfg := testConfig(members)
	cfg.DailySize = 11
	result := Allocate(cfg)

	require.Len(t, result.Fixed, 10)

	var state *MemberState
	for _, m := range result.Members {
		if m.Name == "daytwo" {
			state = m
		}
	}
	require.NotNil(t, state)

	assert.Equal(t, 1, state.Count)
	assert.Equal(t, StatusUnavailable, state.Status["2025-04-01"])
	assert.Equal(t, StatusSelected, state.Status["2025-04-02"])
	assert.Equal(t, StatusUnavailable, state.Status["2025-04-03"])

	assert.NotContains(t, result.Rosters["2025-04-01"], "daytwo")
	assert.Contains(t, result.Rosters["2025-04-02"], "daytwo")
	assert.NotContains(t, result.Rosters["2025-04-03"], "daytwo")
}

func TestAllocate_CapReachedStatus(t *testing.T) {
	// One fixed member, one variable slot per day, and a capped variable
	// member who is available every day.
	cfg := testConfig([]model.Member{
		alwaysMember("lead", "55-0", "5M"),
		{Name: "capped", Progress: "50-0", Power: "1M", Answer: model.AnswerAlwaysAvailable, Cap: 1},
	})
	cfg.DailySize = 2
	cfg.FixedPoolSize = 1
	result := Allocate(cfg)

	require.Equal(t, []string{"lead"}, result.Fixed)

	var state *MemberState
	for _, m := range result.Members {
		if m.Name == "capped" {
			state = m
		}
	}
	require.NotNil(t, state)

	assert.Equal(t, 1, state.Count)
	assert.Equal(t, StatusSelected, state.Status["2025-04-01"])
	assert.Equal(t, StatusCapReached, state.Status["2025-04-02"])
	assert.Equal(t, StatusCapReached, state.Status["2025-04-03"])
}

func TestAllocate_RosterSizeNeverExceedsDailySize(t *testing.T) {
	members := make([]model.Member, 0, 40)
	for i := 0; i < 40; i++ {
		members = append(members, alwaysMember(fmt.Sprintf("m-%02d", i), "50-0", fmt.Sprintf("%dK", 100+i)))
	}

	result := Allocate(testConfig(members))

	assert.Len(t, result.Fixed, 10)
	for _, d := range result.Dates {
		assert.Len(t, result.Roster(d), 20)
	}
}

func TestAllocate_CountsMatchRosters(t *testing.T) {
	members := []model.Member{
		alwaysMember("a", "50-1", "2M"),
		alwaysMember("b", "49-0", "1M"),
		{Name: "c", Progress: "48-0", Power: "500K", Answer: model.AnswerConditional, SpecificDates: []string{"2025-04-01", "2025-04-03"}},
		{Name: "d", Progress: "47-0", Power: "400K", Answer: model.AnswerDeclined},
	}

	result := Allocate(testConfig(members))

	for _, m := range result.Members {
		appearances := 0
		for _, roster := range result.Rosters {
			for _, name := range roster {
				if name == m.Name {
					appearances++
				}
			}
		}
		assert.Equal(t, appearances, m.Count, "member %s", m.Name)
	}
}

func TestAllocate_StatusMatrixIsTotal(t *testing.T) {
	members := []model.Member{
		alwaysMember("a", "50-1", "2M"),
		{Name: "b", Progress: "49-0", Power: "1M", Answer: model.AnswerNoResponse},
		{Name: "c", Progress: "48-0", Power: "500K", Answer: model.AnswerConditional, SpecificDates: []string{"2025-04-02"}},
	}

	result := Allocate(testConfig(members))

	for _, m := range result.Members {
		require.Len(t, m.Status, len(result.Dates), "member %s", m.Name)
		for _, d := range result.Dates {
			assert.Contains(t, m.Status, d)
		}
	}
}

func TestAllocate_PowerPriorityKeepsRankOrder(t *testing.T) {
	// Fixed pool disabled so everyone competes for the variable slots
	cfg := testConfig([]model.Member{
		alwaysMember("low", "40-0", "1M"),
		alwaysMember("high", "50-0", "1M"),
		alwaysMember("mid", "45-0", "1M"),
	})
	cfg.FixedPoolSize = 0
	cfg.DailySize = 2
	result := Allocate(cfg)

	for _, d := range result.Dates {
		assert.Equal(t, []string{"high", "mid"}, result.Roster(d))
	}
}

func TestAllocate_PreferConditionalVariant(t *testing.T) {
	cfg := testConfig([]model.Member{
		alwaysMember("always-strong", "55-0", "9M"),
		{Name: "conditional-weak", Progress: "40-0", Power: "100K", Answer: model.AnswerConditional,
			SpecificDates: []string{"2025-04-01", "2025-04-02", "2025-04-03"}},
	})
	cfg.FixedPoolSize = 0
	cfg.DailySize = 1
	cfg.PreferConditional = true
	result := Allocate(cfg)

	// The member who offered specific dates wins the slot over the
	// stronger always-available member.
	for _, d := range result.Dates {
		assert.Equal(t, []string{"conditional-weak"}, result.Roster(d))
	}
}

func TestAllocate_EqualOpportunityRedistributes(t *testing.T) {
	// One slot per day, two identical members: equal-opportunity mode must
	// alternate instead of letting the first-ranked member take every day.
	cfg := testConfig([]model.Member{
		alwaysMember("first", "50-0", "2M"),
		alwaysMember("second", "50-0", "2M"),
	})
	cfg.FixedPoolSize = 0
	cfg.DailySize = 1
	cfg.Mode = ModeEqualOpportunity
	result := Allocate(cfg)

	assert.Equal(t, []string{"first"}, result.Rosters["2025-04-01"])
	assert.Equal(t, []string{"second"}, result.Rosters["2025-04-02"])
	assert.Equal(t, []string{"first"}, result.Rosters["2025-04-03"])
}

func TestAllocate_EqualOpportunityNeverSkipsLowerCount(t *testing.T) {
	// Two otherwise-identical members who differ only in accumulated
	// count; with one slot open the lower-count member must win it.
	cfg := testConfig([]model.Member{
		alwaysMember("greedy", "50-0", "2M"),
		{Name: "starved", Progress: "50-0", Power: "2M", Answer: model.AnswerConditional,
			SpecificDates: []string{"2025-04-02", "2025-04-03"}},
	})
	cfg.FixedPoolSize = 0
	cfg.DailySize = 1
	cfg.Mode = ModeEqualOpportunity
	result := Allocate(cfg)

	// Day one only greedy is available; day two starved has the lower count.
	assert.Equal(t, []string{"greedy"}, result.Rosters["2025-04-01"])
	assert.Equal(t, []string{"starved"}, result.Rosters["2025-04-02"])
}

func TestAllocate_EmptyRoster(t *testing.T) {
	result := Allocate(testConfig(nil))

	assert.Empty(t, result.Fixed)
	require.Len(t, result.Rosters, 3)
	for _, d := range result.Dates {
		assert.Empty(t, result.Roster(d))
	}
}

func TestAllocate_EmptyPeriod(t *testing.T) {
	cfg := testConfig([]model.Member{alwaysMember("a", "50-0", "1M")})
	cfg.Period = nil
	result := Allocate(cfg)

	assert.Empty(t, result.Rosters)
	assert.Empty(t, result.Fixed)
}

func TestAllocate_Idempotent(t *testing.T) {
	members := []model.Member{
		alwaysMember("a", "50-1", "2M"),
		alwaysMember("b", "49-0", "1M"),
		{Name: "c", Progress: "48-0", Power: "500K", Answer: model.AnswerConditional, SpecificDates: []string{"2025-04-01"}},
	}

	first := Allocate(testConfig(members))
	second := Allocate(testConfig(members))

	assert.Equal(t, first.Fixed, second.Fixed)
	assert.Equal(t, first.Rosters, second.Rosters)
}

func TestAllocate_DoesNotMutateSnapshot(t *testing.T) {
	members := []model.Member{
		alwaysMember("a", "50-1", "2M"),
		{Name: "b", Progress: "49-0", Power: "1M", Answer: model.AnswerConditional, SpecificDates: []string{"2025-04-01"}},
	}
	snapshot := make([]model.Member, len(members))
	copy(snapshot, members)

	Allocate(testConfig(members))

	assert.Equal(t, snapshot, members)
}
