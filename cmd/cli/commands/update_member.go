package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuyat/siege-roster/pkg/core/services"
)

// UpdateMemberCmd creates the updateMember command
func UpdateMemberCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateMember <name>",
		Short: "Create or update a roster member by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _ := cmd.Flags().GetString("progress")
			power, _ := cmd.Flags().GetString("power")
			answer, _ := cmd.Flags().GetString("answer")
			dates, _ := cmd.Flags().GetStringSlice("dates")
			dayCap, _ := cmd.Flags().GetInt("cap")

			result, err := services.UpdateMember(app.Ctx, app.Database, app.Logger, services.UpdateMemberInput{
				Name:          args[0],
				Progress:      progress,
				Power:         power,
				Answer:        answer,
				SpecificDates: dates,
				Cap:           dayCap,
			})
			if err != nil {
				return fmt.Errorf("failed to save member: %w", err)
			}

			if result.Created {
				fmt.Printf("\n✓ Member created: %s\n", result.Member.Name)
			} else {
				fmt.Printf("\n✓ Member updated: %s\n", result.Member.Name)
			}
			fmt.Printf("  Progress: %s\n", result.Member.Progress)
			fmt.Printf("  Power:    %s\n", result.Member.Power)
			fmt.Printf("  Answer:   %s\n", result.Member.Answer)
			if result.Member.SpecificDates != "" {
				fmt.Printf("  Dates:    %s\n", result.Member.SpecificDates)
			}
			if result.Member.Cap > 0 {
				fmt.Printf("  Cap:      %d\n", result.Member.Cap)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("progress", "", "Stage progress, e.g. 10-3")
	cmd.Flags().String("power", "", "Combat power, e.g. 120M or 95K")
	cmd.Flags().String("answer", "", "Availability answer text")
	cmd.Flags().StringSlice("dates", nil, "Specific available dates (YYYY-MM-DD, comma-separated)")
	cmd.Flags().Int("cap", 0, "Maximum participation days (0 means uncapped)")

	return cmd
}
