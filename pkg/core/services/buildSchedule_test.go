package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/core/allocator"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// mockScheduleDB implements a test double for the schedule build store
type mockScheduleDB struct {
	members       []db.Member
	insertedRuns  []*db.ScheduleRun
	getMembersErr error
	insertErr     error
}

func (m *mockScheduleDB) GetMembers(ctx context.Context) ([]db.Member, error) {
	if m.getMembersErr != nil {
		return nil, m.getMembersErr
	}
	return m.members, nil
}

func (m *mockScheduleDB) InsertScheduleRun(run *db.ScheduleRun) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedRuns = append(m.insertedRuns, run)
	return nil
}

func testScheduleConfig() *config.Config {
	return &config.Config{
		DatabaseSheetID: "test-sheet",
		DailyTeamSize:   3,
		FixedPoolSize:   2,
		DefaultMode:     "power",
	}
}

func availableMember(name, progress, power string) db.Member {
	return db.Member{
		Name:     name,
		Progress: progress,
		Power:    power,
		Answer:   "Always available",
	}
}

func TestBuildSchedule(t *testing.T) {
	mock := &mockScheduleDB{
		members: []db.Member{
			availableMember("alpha", "10-3", "120M"),
			availableMember("beta", "10-1", "110M"),
			availableMember("gamma", "9-5", "90M"),
			availableMember("delta", "8-2", "80M"),
		},
	}

	result, err := BuildSchedule(context.Background(), mock, testScheduleConfig(), zap.NewNop(), BuildScheduleOptions{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		Mode:  allocator.ModePowerPriority,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 4, result.MemberCount)
	assert.Equal(t, []string{"2026-01-05", "2026-01-06"}, result.Result.Dates)
	assert.Equal(t, []string{"alpha", "beta"}, result.Result.Fixed)

	for _, date := range result.Result.Dates {
		assert.Len(t, result.Result.Roster(date), 3)
	}

	require.Len(t, mock.insertedRuns, 1)
	run := mock.insertedRuns[0]
	assert.Equal(t, result.RunID, run.ID)
	assert.Equal(t, "2026-01-05", run.Start)
	assert.Equal(t, "2026-01-06", run.End)
	assert.Equal(t, "power", run.Mode)
	assert.Equal(t, 2, run.DayCount)
	assert.Equal(t, 2, run.FixedCount)
}

func TestBuildSchedule_DryRun(t *testing.T) {
	mock := &mockScheduleDB{
		members: []db.Member{availableMember("alpha", "5-1", "10M")},
	}

	result, err := BuildSchedule(context.Background(), mock, testScheduleConfig(), zap.NewNop(), BuildScheduleOptions{
		Start:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Mode:   allocator.ModePowerPriority,
		DryRun: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Empty(t, mock.insertedRuns)
}

func TestBuildSchedule_ExclusionRule(t *testing.T) {
	mock := &mockScheduleDB{
		members: []db.Member{availableMember("alpha", "5-1", "10M")},
	}

	cfg := testScheduleConfig()
	cfg.ExclusionRule = "FREQ=WEEKLY;BYDAY=SU"

	// Monday Jan 5 through Sunday Jan 11: the Sunday drops out
	result, err := BuildSchedule(context.Background(), mock, cfg, zap.NewNop(), BuildScheduleOptions{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		Mode:  allocator.ModePowerPriority,
	})
	require.NoError(t, err)

	assert.Len(t, result.Result.Dates, 6)
	assert.NotContains(t, result.Result.Dates, "2026-01-11")
}

func TestBuildSchedule_InvalidExclusionRule(t *testing.T) {
	mock := &mockScheduleDB{
		members: []db.Member{availableMember("alpha", "5-1", "10M")},
	}

	cfg := testScheduleConfig()
	cfg.ExclusionRule = "FREQ=SOMETIMES"

	_, err := BuildSchedule(context.Background(), mock, cfg, zap.NewNop(), BuildScheduleOptions{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		Mode:  allocator.ModePowerPriority,
	})
	assert.Error(t, err)
}

func TestBuildSchedule_EndBeforeStart(t *testing.T) {
	mock := &mockScheduleDB{}

	_, err := BuildSchedule(context.Background(), mock, testScheduleConfig(), zap.NewNop(), BuildScheduleOptions{
		Start: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Mode:  allocator.ModePowerPriority,
	})
	assert.Error(t, err)
}

func TestBuildSchedule_StoreError(t *testing.T) {
	mock := &mockScheduleDB{
		getMembersErr: errors.New("sheet unavailable"),
	}

	_, err := BuildSchedule(context.Background(), mock, testScheduleConfig(), zap.NewNop(), BuildScheduleOptions{
		Start: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		Mode:  allocator.ModePowerPriority,
	})
	assert.Error(t, err)
}
