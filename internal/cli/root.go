// Package cli implements the reversi terminal client.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Play Reversi against the computer",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}

			level, err := config.ParseLogLevel(name)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(Play())
	root.AddCommand(Replay())
	root.AddCommand(Show())

	return root
}

// printBoard writes the board with counts. Legal moves are marked if highlight is set.
func printBoard(w io.Writer, game *othello.Game, highlight bool) {
	var marked []othello.Position
	if highlight {
		marked = game.LegalMoves()
	}

	board := game.Board()
	fmt.Fprintln(w, strings.Join(board.ASCIIArtLines(marked), "\n"))

	counts := game.DiscCounts()
	fmt.Fprintf(w, "● black %d  ○ white %d\n", counts.Black, counts.White)
}

func outcomeMessage(outcome othello.Outcome) string {
	switch outcome {
	case othello.BlackWins:
		return "Black wins."
	case othello.WhiteWins:
		return "White wins."
	case othello.Draw:
		return "Draw."
	default:
		return "Game in progress."
	}
}
