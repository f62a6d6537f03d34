package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/guess-my-number-cli/internal/adapters/render/session"
	"github.com/bnema/guess-my-number-cli/internal/adapters/tui/play"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/spf13/cobra"
)

const plainHelp = "type a number to guess, \"new\" for a new game, \"quit\" to leave"

func newPlayCmd(app *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plain {
				return runPlain(cmd, app)
			}
			return play.Run(cmd.Context(), app.controller, play.Options{AltScreen: true})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Line mode: read guesses from stdin instead of the interactive screen")

	return cmd
}

func runPlain(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()
	won := false
	unsubscribe := app.controller.Subscribe(func(tr domain.Transition) {
		won = tr.To == domain.RoundStatusWon
	})
	defer unsubscribe()

	_ = app.controller.StartGame(ctx)
	if err := writeSession(cmd, app, app.controller.State(), won); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		var state domain.SessionState
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "new":
			state = app.controller.NewGame(ctx)
		case "help", "?":
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), plainHelp); err != nil {
				return err
			}
			continue
		default:
			var err error
			state, err = app.controller.SubmitGuess(ctx, line)
			if err != nil {
				if errors.Is(err, domain.ErrOracleUnavailable) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error fetching guess:\n%v\n", err)
				} else {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
		}

		if err := writeSession(cmd, app, state, won); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read guesses: %w", err)
	}

	return nil
}

func writeSession(cmd *cobra.Command, app *app, state domain.SessionState, won bool) error {
	rendered, err := app.renderer(state, session.RenderOptions{Highlight: won})
	if err != nil {
		return fmt.Errorf("render session: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
