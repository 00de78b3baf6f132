package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

const spinnerCharSet = 14

// reversi play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game against the computer in the terminal.

			Enter moves in field notation, like d3. Squares where you
			can move are marked with a dot. Type restart to start over
			or quit to stop.

			The computer takes a corner when it can, then an edge,
			and otherwise any legal move.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sideName, _ := cmd.Flags().GetString("side")
			delay, _ := cmd.Flags().GetDuration("delay")
			seed, _ := cmd.Flags().GetInt64("seed")

			side, err := othello.ParseSide(sideName)
			if err != nil {
				return err
			}

			if delay < 0 {
				return errors.New("delay must not be negative")
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			player := newPlayer(othello.NewGame(), side, othello.NewOpponent(rng), cmd.InOrStdin(), cmd.OutOrStdout())
			player.delay = delay
			return player.run()
		},
	}

	cmd.Flags().String("side", "black", "The side you play, black or white")
	cmd.Flags().Duration("delay", config.DefaultOpponentDelay, "Time the computer waits before moving")
	cmd.Flags().Int64("seed", 0, "Seed for the computer's choices")

	return cmd
}

// player runs a game between a human on the terminal and the computer.
type player struct {
	game     *othello.Game
	human    othello.Side
	opponent *othello.Opponent
	delay    time.Duration

	in  *bufio.Scanner
	out io.Writer
}

func newPlayer(game *othello.Game, human othello.Side, opponent *othello.Opponent, in io.Reader, out io.Writer) *player {
	return &player{
		game:     game,
		human:    human,
		opponent: opponent,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// run plays until the human quits or the input ends.
func (p *player) run() error {
	fmt.Fprintf(p.out, "You play %s.\n", p.human)

	for {
		if p.game.IsOver() {
			printBoard(p.out, p.game, false)
			fmt.Fprintln(p.out, "Game over. "+p.resultMessage())
			fmt.Fprintln(p.out, "Type restart to play again or quit to stop.")

			quit, err := p.readAfterGame()
			if quit || err != nil {
				return err
			}
			continue
		}

		if p.game.Turn() != p.human {
			if err := p.playComputer(); err != nil {
				return err
			}
			continue
		}

		printBoard(p.out, p.game, true)

		quit, err := p.readHumanMove()
		if quit || err != nil {
			return err
		}
	}
}

func (p *player) resultMessage() string {
	winner, ok := p.game.Outcome().Winner()
	switch {
	case !ok:
		return outcomeMessage(p.game.Outcome())
	case winner == p.human:
		return "You win!"
	default:
		return "The computer wins."
	}
}

// readLine returns the next trimmed input line. It returns false at the end of input.
func (p *player) readLine(prompt string) (string, bool, error) {
	fmt.Fprint(p.out, prompt)

	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false, p.in.Err()
	}

	return strings.ToLower(strings.TrimSpace(p.in.Text())), true, nil
}

func (p *player) readAfterGame() (bool, error) {
	for {
		line, ok, err := p.readLine("> ")
		if !ok || err != nil {
			return true, err
		}

		switch line {
		case "quit", "exit":
			return true, nil
		case "restart":
			p.game.Restart()
			fmt.Fprintln(p.out, "New game.")
			return false, nil
		default:
			fmt.Fprintln(p.out, "The game is over. Type restart or quit.")
		}
	}
}

func (p *player) readHumanMove() (bool, error) {
	line, ok, err := p.readLine(fmt.Sprintf("Your move (%s): ", p.human))
	if !ok || err != nil {
		return true, err
	}

	switch line {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "restart":
		p.game.Restart()
		fmt.Fprintln(p.out, "New game.")
		return false, nil
	}

	pos, err := othello.ParsePosition(line)
	if err != nil {
		fmt.Fprintf(p.out, "Cannot read move %q, use a field like d3.\n", line)
		return false, nil
	}

	result, err := p.game.Apply(pos, p.human)
	if err != nil {
		fmt.Fprintf(p.out, "%v\n", err)
		return false, nil
	}

	p.announcePass(result)
	return false, nil
}

func (p *player) playComputer() error {
	p.wait()

	side := p.game.Turn()
	pos, err := p.opponent.Choose(p.game.LegalMoves())
	if err != nil {
		return fmt.Errorf("computer cannot move: %w", err)
	}

	result, err := p.game.Apply(pos, side)
	if err != nil {
		return fmt.Errorf("computer played an illegal move: %w", err)
	}

	fmt.Fprintf(p.out, "Computer plays %s.\n", pos)
	p.announcePass(result)
	return nil
}

func (p *player) announcePass(result othello.ApplyResult) {
	if result.Status != othello.Passed {
		return
	}

	if result.Side == p.human {
		fmt.Fprintln(p.out, "The computer has no moves and passes.")
	} else {
		fmt.Fprintln(p.out, "You have no moves and pass.")
	}
}

// wait shows a spinner during the computer's delay.
func (p *player) wait() {
	if p.delay <= 0 {
		return
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(p.out))
	s.Suffix = " computer is thinking"
	s.Start()
	time.Sleep(p.delay)
	s.Stop()
}
