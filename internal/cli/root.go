// Package cli wires the coaching service behind a cobra command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmallard/compass/internal/paths"
	"github.com/jmallard/compass/internal/service"
)

// App holds references to the services CLI commands call into.
type App struct {
	Coach service.CoachService
	Store service.Store
	Paths *paths.Engine

	// IsInteractive reports whether stdin is a terminal. Decides
	// between the TUI and the plain line REPL for chat.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "compass",
		Short:         "Conversational career coach",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept underscored flag spellings, e.g. --user_id for --user-id.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newChatCmd(app),
		newProfileCmd(app),
		newActionsCmd(app),
		newPathsCmd(app),
	)

	return root
}
