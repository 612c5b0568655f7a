package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/pkg/core/allocator"
	"github.com/kazuyat/siege-roster/pkg/core/services"
)

// BuildScheduleCmd creates the buildSchedule command
func BuildScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildSchedule",
		Short: "Build the daily rosters for an event period",
		Long:  "Run the allocation algorithm over the roster sheet and print the fixed pool and daily rosters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			modeStr, _ := cmd.Flags().GetString("mode")
			preferConditional, _ := cmd.Flags().GetBool("prefer-conditional")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			start := time.Now().UTC()
			if startStr != "" {
				parsed, err := time.Parse(allocator.DateLayout, startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q, expected %s: %w", startStr, allocator.DateLayout, err)
				}
				start = parsed
			}

			end := start.AddDate(0, 0, app.Cfg.EventLengthDays-1)
			if endStr != "" {
				parsed, err := time.Parse(allocator.DateLayout, endStr)
				if err != nil {
					return fmt.Errorf("invalid end date %q, expected %s: %w", endStr, allocator.DateLayout, err)
				}
				end = parsed
			}

			mode := allocator.Mode(modeStr)
			if modeStr == "" {
				mode = allocator.Mode(app.Cfg.DefaultMode)
			}
			if !mode.IsValid() {
				return fmt.Errorf("invalid mode %q, expected 'power' or 'equal'", modeStr)
			}

			app.Logger.Debug("buildSchedule command",
				zap.String("mode", string(mode)),
				zap.Bool("prefer_conditional", preferConditional),
				zap.Bool("dry_run", dryRun))

			result, err := services.BuildSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.BuildScheduleOptions{
				Start:             start,
				End:               end,
				Mode:              mode,
				PreferConditional: preferConditional || app.Cfg.PreferConditional,
				DryRun:            dryRun,
			})
			if err != nil {
				return fmt.Errorf("schedule build failed: %w", err)
			}

			fmt.Printf("\n✓ Schedule built successfully!\n\n")
			fmt.Printf("Run ID:  %s\n", result.RunID)
			fmt.Printf("Period:  %s to %s (%d days)\n",
				start.Format(allocator.DateLayout),
				end.Format(allocator.DateLayout),
				len(result.Result.Dates))
			fmt.Printf("Mode:    %s\n", mode)
			fmt.Printf("Members: %d\n", result.MemberCount)
			if dryRun {
				fmt.Printf("Status:  🧪 DRY RUN (not saved)\n")
			}
			fmt.Println()

			fmt.Println(services.BuildReport(result.Result))

			return nil
		},
	}

	cmd.Flags().String("start", "", "First event day (YYYY-MM-DD, default today)")
	cmd.Flags().String("end", "", "Last event day (YYYY-MM-DD, default start plus the configured event length)")
	cmd.Flags().String("mode", "", "Tie-break mode: power or equal (default from config)")
	cmd.Flags().Bool("prefer-conditional", false, "Fill variable slots with specific-date members first")
	cmd.Flags().Bool("dry-run", false, "Build the schedule without recording the run")

	return cmd
}
