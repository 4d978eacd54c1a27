package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmallard/compass/internal/cli/formatter"
	"github.com/jmallard/compass/internal/contract"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the career coach",
		Long: `Start a coaching conversation. On a terminal this opens the
interactive chat view; when input is piped, each line is treated
as one message and replies are written to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChatTUI(app, userID)
			}
			return runChatREPL(cmd.Context(), app, userID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to coach")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// runChatREPL is the non-terminal chat loop: one message per input line.
func runChatREPL(ctx context.Context, app *App, userID string, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, formatter.FormatWelcome())

	var sessionID string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		resp, err := app.Coach.ProcessRequest(ctx, contract.ChatRequest{
			UserID:    userID,
			Message:   line,
			SessionID: sessionID,
		})
		if err != nil {
			var chatErr *contract.ChatError
			if errors.As(err, &chatErr) {
				fmt.Fprintf(out, "%s\n", formatter.Dim(chatErr.Message))
				continue
			}
			return err
		}
		sessionID = resp.SessionID

		fmt.Fprintf(out, "\n%s\n", formatter.FormatResponse(resp))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if sessionID != "" {
		// Best effort; the session store is in-memory anyway.
		_ = app.Coach.EndSession(ctx, sessionID)
	}
	return nil
}
