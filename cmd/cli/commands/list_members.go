package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazuyat/siege-roster/pkg/core/services"
)

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listMembers",
		Short: "List all roster members from the member sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := services.ListMembers(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			fmt.Printf("\nFound %d members:\n\n", len(members))
			for _, m := range members {
				capInfo := ""
				if m.Cap > 0 {
					capInfo = fmt.Sprintf(" [cap: %d]", m.Cap)
				}
				datesInfo := ""
				if m.SpecificDates != "" {
					datesInfo = fmt.Sprintf(" (%s)", m.SpecificDates)
				}
				fmt.Printf("- %s - %s / %s - %s%s%s\n",
					m.Name,
					m.Progress,
					m.Power,
					m.Answer,
					datesInfo,
					capInfo,
				)
			}

			return nil
		},
	}
}
