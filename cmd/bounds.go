package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/guess-my-number-cli/internal/adapters/tui/play"
	"github.com/bnema/guess-my-number-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBoundsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Start a game and print the range the secret number lies in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bounds, err := play.FetchBounds(cmd.Context(), cmd.ErrOrStderr(), "Starting game...", func(ctx context.Context) (domain.GameBounds, error) {
				if err := app.controller.StartGame(ctx); err != nil {
					return domain.GameBounds{}, err
				}
				state := app.controller.State()
				if state.Bounds == nil {
					return domain.GameBounds{}, fmt.Errorf("start game: no range received")
				}
				return *state.Bounds, nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bounds)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Between %d and %d\n", bounds.Min, bounds.Max)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
