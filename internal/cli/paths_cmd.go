package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallard/compass/internal/cli/formatter"
	"github.com/jmallard/compass/internal/paths"
)

func newPathsCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show career paths ranked for your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Store.GetUserProfile(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}

			list := paths.IdentifyTradeOffs(app.Paths.GeneratePaths(p))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPaths(list))
			if p == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n",
					formatter.Dim("These are general suggestions. Create a profile for a ranking tailored to you."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
