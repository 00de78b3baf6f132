package cli

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := Root()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestReplay(t *testing.T) {
	out, err := runRoot(t, "", "replay", "f5", "d6")
	require.NoError(t, err)

	require.Contains(t, out, "+-a-b-c-d-e-f-g-h-+")
	require.Contains(t, out, "● black 3  ○ white 3")
	require.Contains(t, out, "black to move.")
}

func TestReplay_Errors(t *testing.T) {
	_, err := runRoot(t, "", "replay", "f5", "z0")
	require.ErrorContains(t, err, "move 2")

	_, err = runRoot(t, "", "replay", "d3", "d3")
	require.ErrorIs(t, err, othello.ErrIllegalMove)

	_, err = runRoot(t, "", "replay")
	require.Error(t, err)
}

func TestPlay_MoveAndQuit(t *testing.T) {
	out, err := runRoot(t, "d3\nquit\n", "play", "--delay", "0s", "--seed", "1")
	require.NoError(t, err)

	require.Contains(t, out, "You play black.")
	require.Contains(t, out, "Your move (black): ")
	require.Contains(t, out, "Computer plays ")
	require.Equal(t, 2, strings.Count(out, "Your move (black): "))
}

func TestPlay_HumanWhite(t *testing.T) {
	out, err := runRoot(t, "", "play", "--side", "white", "--delay", "0s")
	require.NoError(t, err)

	// The computer opens, then the input ends.
	require.Contains(t, out, "Computer plays ")
	require.Contains(t, out, "Your move (white): ")
}

func TestPlay_InvalidFlags(t *testing.T) {
	_, err := runRoot(t, "", "play", "--side", "red")
	require.Error(t, err)

	_, err = runRoot(t, "", "play", "--delay", "-1s")
	require.Error(t, err)
}

func TestPlayer_RejectsBadInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlayer(othello.NewGame(), othello.Black, othello.NewOpponent(rand.New(rand.NewSource(1))),
		strings.NewReader("hello\na1\n\nquit\n"), out)

	require.NoError(t, p.run())
	require.Contains(t, out.String(), `Cannot read move "hello"`)
	require.Contains(t, out.String(), "a1 flips nothing")
	require.Equal(t, 0, p.game.MoveCount())
}

func TestPlayer_PassAndGameOver(t *testing.T) {
	board, err := othello.NewBoardFromRows(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BWW.....",
	)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	p := newPlayer(othello.NewGameFromBoard(board, othello.Black), othello.Black,
		othello.NewOpponent(nil), strings.NewReader("c1\nd8\nundo\nquit\n"), out)

	require.NoError(t, p.run())
	require.Contains(t, out.String(), "The computer has no moves and passes.")
	require.Contains(t, out.String(), "Game over. You win!")
	require.Contains(t, out.String(), "The game is over. Type restart or quit.")
}

func TestPlayer_Restart(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlayer(othello.NewGame(), othello.Black, othello.NewOpponent(rand.New(rand.NewSource(2))),
		strings.NewReader("c4\nrestart\n"), out)

	require.NoError(t, p.run())
	require.Contains(t, out.String(), "New game.")
	require.Equal(t, 0, p.game.MoveCount())
}

func TestShow(t *testing.T) {
	start := "......../......../......../...WB.../...BW.../......../......../........"

	out, err := runRoot(t, "", "show", start)
	require.NoError(t, err)
	require.Contains(t, out, "● black 2  ○ white 2")
	require.Contains(t, out, "black moves: d3 c4 f5 e6")

	out, err = runRoot(t, "", "show", "--side", "white", start)
	require.NoError(t, err)
	require.Contains(t, out, "white moves: e3 f4 c5 d6")

	out, err = runRoot(t, "", "show", "--side", "w", "BB....../......../......../......../......../......../......../........")
	require.NoError(t, err)
	require.Contains(t, out, "white has no moves.")

	_, err = runRoot(t, "", "show", "BB")
	require.Error(t, err)
}
