package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

// reversi replay
func Replay() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <move>...",
		Short: "Replay a list of moves and show the resulting board",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`replay plays the given moves from the start position
			and prints the final board with the disc counts.

			Moves are given in field notation, a column a-h followed by
			a row 1-8, like d3. Passes are not written down: a side
			without moves is skipped automatically.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves := make([]othello.Position, len(args))
			for i, arg := range args {
				pos, err := othello.ParsePosition(arg)
				if err != nil {
					return fmt.Errorf("move %d: %w", i+1, err)
				}
				moves[i] = pos
			}

			game, err := othello.NewGameFromMoves(moves)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBoard(out, game, !game.IsOver())

			if game.IsOver() {
				fmt.Fprintln(out, "Game over. "+outcomeMessage(game.Outcome()))
			} else {
				fmt.Fprintf(out, "%s to move.\n", game.Turn())
			}

			return nil
		},
	}
}
