package othello

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameAlreadyOver = errors.New("game already over")
)

// Status describes what happened to the turn order after a move.
type Status int

const (
	// Continued means the opponent of the mover is to move.
	Continued Status = iota
	// Passed means the opponent had no moves, so the mover moves again.
	Passed
	// Finished means neither side can move.
	Finished
)

func (s Status) String() string {
	switch s {
	case Continued:
		return "continued"
	case Passed:
		return "passed"
	default:
		return "finished"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for _, status := range []Status{Continued, Passed, Finished} {
		if status.String() == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Outcome is the result of a game.
type Outcome int

const (
	InProgress Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	for _, outcome := range []Outcome{InProgress, BlackWins, WhiteWins, Draw} {
		if outcome.String() == s {
			return outcome, nil
		}
	}
	return InProgress, fmt.Errorf("unknown outcome %q", s)
}

func (o *Outcome) UnmarshalText(text []byte) error {
	outcome, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = outcome
	return nil
}

// Winner returns the winning side. It returns false for a draw or an unfinished game.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	default:
		return Black, false
	}
}

// outcomeFromCounts compares disc counts, nothing else.
func outcomeFromCounts(counts DiscCounts) Outcome {
	switch {
	case counts.Black > counts.White:
		return BlackWins
	case counts.White > counts.Black:
		return WhiteWins
	default:
		return Draw
	}
}

// LastMove records the most recent placement, used for highlighting.
type LastMove struct {
	Side     Side       `json:"side"`
	Position Position   `json:"position"`
	Captured []Position `json:"captured"`
}

// ApplyResult is returned by a successful Apply.
type ApplyResult struct {
	Status Status `json:"status"`

	// Side is the side to move next. It is the opponent of the mover for
	// Continued and the mover itself for Passed. Unused for Finished.
	Side Side `json:"side"`

	Outcome  Outcome    `json:"outcome"`
	Captured []Position `json:"captured"`
}

// Game represents an Othello game, either complete or in progress.
// It is only changed through Apply and Restart.
type Game struct {
	board Board
	turn  Side
	over  bool

	// legalMoves are the moves for turn. Empty if and only if over is set.
	legalMoves []Position

	moveCount int
	lastMove  *LastMove

	// history holds all placements. Passes are implicit.
	history []Move
}

// NewGame creates a game in the starting position with Black to move.
func NewGame() *Game {
	g := &Game{}
	g.Restart()
	return g
}

// NewGameFromBoard creates a game from a custom position, which is useful for
// debugging and tests. If turn has no moves the turn passes to the opponent;
// if neither side can move the game is finished.
func NewGameFromBoard(board Board, turn Side) *Game {
	g := &Game{
		board:   board,
		turn:    turn,
		history: make([]Move, 0),
	}
	g.resolveTurn(turn)
	return g
}

// NewGameFromMoves replays placements from the starting position. Each
// move is played by the side whose turn it is, so passes are implicit.
func NewGameFromMoves(moves []Position) (*Game, error) {
	g := NewGame()

	for i, pos := range moves {
		if _, err := g.Apply(pos, g.turn); err != nil {
			return nil, fmt.Errorf("failed to replay move %d (%s): %w", i+1, pos, err)
		}
	}

	return g, nil
}

// Restart resets every field to the start of a new game.
func (g *Game) Restart() {
	g.board = NewBoardStart()
	g.turn = Black
	g.over = false
	g.moveCount = 0
	g.lastMove = nil
	g.history = make([]Move, 0)
	g.legalMoves = g.board.LegalMoves(Black)
}

// Apply plays a disc for side on pos. Rejected moves leave the game untouched.
func (g *Game) Apply(pos Position, side Side) (ApplyResult, error) {
	if g.over {
		return ApplyResult{}, ErrGameAlreadyOver
	}

	if side != g.turn {
		return ApplyResult{}, fmt.Errorf("%w: it is %s's turn", ErrIllegalMove, g.turn)
	}

	if !pos.InBounds() {
		return ApplyResult{}, fmt.Errorf("%w: %s is off the board", ErrIllegalMove, pos)
	}

	if g.board.Get(pos) != Empty {
		return ApplyResult{}, fmt.Errorf("%w: %s is occupied", ErrIllegalMove, pos)
	}

	if !slices.Contains(g.legalMoves, pos) {
		return ApplyResult{}, fmt.Errorf("%w: %s flips nothing", ErrIllegalMove, pos)
	}

	flipped := g.board.FlippableFrom(pos, side)

	g.board.Set(pos, side.Cell())
	for _, f := range flipped {
		g.board.Set(f, side.Cell())
	}

	g.lastMove = &LastMove{
		Side:     side,
		Position: pos,
		Captured: flipped,
	}
	g.moveCount++
	g.history = append(g.history, Move{Side: side, Position: pos})

	status := g.resolveTurn(side.Opposite())

	return ApplyResult{
		Status:   status,
		Side:     g.turn,
		Outcome:  g.Outcome(),
		Captured: slices.Clone(flipped),
	}, nil
}

// resolveTurn hands the turn to next if it can move, otherwise back to the
// other side, otherwise ends the game.
func (g *Game) resolveTurn(next Side) Status {
	if moves := g.board.LegalMoves(next); len(moves) > 0 {
		g.turn = next
		g.legalMoves = moves
		return Continued
	}

	other := next.Opposite()
	if moves := g.board.LegalMoves(other); len(moves) > 0 {
		g.turn = other
		g.legalMoves = moves
		return Passed
	}

	g.over = true
	g.legalMoves = make([]Position, 0)
	return Finished
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the side to move. Meaningless once the game is over.
func (g *Game) Turn() Side {
	return g.turn
}

// IsOver returns whether neither side can move.
func (g *Game) IsOver() bool {
	return g.over
}

// Outcome returns InProgress until the game is over.
func (g *Game) Outcome() Outcome {
	if !g.over {
		return InProgress
	}
	return outcomeFromCounts(g.board.Counts())
}

// LegalMoves returns the legal moves for the side to move, in row-major order.
func (g *Game) LegalMoves() []Position {
	return slices.Clone(g.legalMoves)
}

// IsLegal returns whether side may play pos right now.
func (g *Game) IsLegal(pos Position, side Side) bool {
	return !g.over && side == g.turn && slices.Contains(g.legalMoves, pos)
}

// CellAt returns the cell at pos, or Empty if pos is off the board.
func (g *Game) CellAt(pos Position) Cell {
	if !g.board.InBounds(pos) {
		return Empty
	}
	return g.board.Get(pos)
}

// DiscCounts returns the number of discs per side.
func (g *Game) DiscCounts() DiscCounts {
	return g.board.Counts()
}

// LastMove returns the most recent placement, if any.
func (g *Game) LastMove() (LastMove, bool) {
	if g.lastMove == nil {
		return LastMove{}, false
	}

	lastMove := *g.lastMove
	lastMove.Captured = slices.Clone(lastMove.Captured)
	return lastMove, true
}

// MoveCount returns the number of placements made.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// History returns a copy of all placements made.
func (g *Game) History() []Move {
	return slices.Clone(g.history)
}

// Positions returns the placed positions in order, suitable for NewGameFromMoves.
func (g *Game) Positions() []Position {
	positions := make([]Position, len(g.history))
	for i, move := range g.history {
		positions[i] = move.Position
	}
	return positions
}
