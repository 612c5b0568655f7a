package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/core/allocator"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// BuildScheduleOptions controls how a schedule is built
type BuildScheduleOptions struct {
	Start             time.Time
	End               time.Time
	Mode              allocator.Mode
	PreferConditional bool
	DryRun            bool
}

// BuildScheduleResult contains the built schedule
type BuildScheduleResult struct {
	RunID       string
	Result      *allocator.Result
	MemberCount int
}

// BuildScheduleStore defines the database operations needed for building a schedule
type BuildScheduleStore interface {
	GetMembers(ctx context.Context) ([]db.Member, error)
	InsertScheduleRun(run *db.ScheduleRun) error
}

// BuildSchedule loads the roster, runs the allocation over the event
// period and records the run. If dryRun is true, no run record is saved.
func BuildSchedule(
	ctx context.Context,
	database BuildScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	opts BuildScheduleOptions,
) (*BuildScheduleResult, error) {
	runID := uuid.New().String()
	logger.Info("Building schedule",
		zap.String("run_id", runID),
		zap.String("start", opts.Start.Format(allocator.DateLayout)),
		zap.String("end", opts.End.Format(allocator.DateLayout)),
		zap.String("mode", string(opts.Mode)),
		zap.Bool("dry_run", opts.DryRun))

	if opts.End.Before(opts.Start) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			opts.End.Format(allocator.DateLayout), opts.Start.Format(allocator.DateLayout))
	}

	logger.Debug("Fetching members")
	records, err := database.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	logger.Debug("Found members", zap.Int("count", len(records)))

	exclude, err := exclusionFromRule(cfg.ExclusionRule, opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	period := allocator.BuildPeriod(opts.Start, opts.End, exclude)
	if len(period) == 0 {
		return nil, fmt.Errorf("no event days remain between %s and %s after exclusions",
			opts.Start.Format(allocator.DateLayout), opts.End.Format(allocator.DateLayout))
	}
	logger.Debug("Built event period", zap.Int("day_count", len(period)))

	result := allocator.Allocate(allocator.Config{
		Members:           toModelMembers(records),
		Period:            period,
		DailySize:         cfg.DailyTeamSize,
		FixedPoolSize:     cfg.FixedPoolSize,
		Mode:              opts.Mode,
		PreferConditional: opts.PreferConditional,
	})

	logger.Info("Allocation complete",
		zap.String("run_id", runID),
		zap.Int("day_count", len(result.Dates)),
		zap.Int("fixed_count", len(result.Fixed)))

	if !opts.DryRun {
		run := &db.ScheduleRun{
			ID:         runID,
			Start:      opts.Start.Format(allocator.DateLayout),
			End:        opts.End.Format(allocator.DateLayout),
			Mode:       string(opts.Mode),
			DayCount:   len(result.Dates),
			FixedCount: len(result.Fixed),
			CreatedAt:  time.Now().Format(timestampLayout),
		}
		if err := database.InsertScheduleRun(run); err != nil {
			return nil, fmt.Errorf("failed to record schedule run: %w", err)
		}
		logger.Debug("Recorded schedule run", zap.String("run_id", runID))
	}

	return &BuildScheduleResult{
		RunID:       runID,
		Result:      result,
		MemberCount: len(records),
	}, nil
}
