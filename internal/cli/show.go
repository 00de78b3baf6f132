package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

// reversi show
func Show() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board>",
		Short: "Show a board and the legal moves of a side",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`show prints a board given as eight rows of eight cells,
			separated by slashes. Use . for empty, B or X for black
			and W or O for white, for example:

			    reversi show ......../......../......../...WB.../...BW.../......../......../........`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sideName, _ := cmd.Flags().GetString("side")

			side, err := othello.ParseSide(sideName)
			if err != nil {
				return err
			}

			board, err := othello.NewBoardFromString(args[0])
			if err != nil {
				return err
			}

			moves := board.LegalMoves(side)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, strings.Join(board.ASCIIArtLines(moves), "\n"))

			counts := board.Counts()
			fmt.Fprintf(out, "● black %d  ○ white %d\n", counts.Black, counts.White)

			fields := make([]string, len(moves))
			for i, pos := range moves {
				fields[i] = pos.String()
			}
			if len(fields) == 0 {
				fmt.Fprintf(out, "%s has no moves.\n", side)
			} else {
				fmt.Fprintf(out, "%s moves: %s\n", side, strings.Join(fields, " "))
			}

			return nil
		},
	}

	cmd.Flags().String("side", "black", "The side to list moves for")

	return cmd
}
