package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newActionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Track recommended actions",
	}

	cmd.AddCommand(newActionsCompleteCmd(app))

	return cmd
}

func newActionsCompleteCmd(app *App) *cobra.Command {
	var userID, actionID string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark an action as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			ack, err := app.Coach.CompleteAction(cmd.Context(), userID, actionID)
			if err != nil {
				return fmt.Errorf("completing action: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ack)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&actionID, "action", "", "Action ID to mark complete")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}
