package othello

import (
	"errors"
	"math/rand"
)

var ErrNoMoves = errors.New("no moves to choose from")

// Opponent picks moves for the computer side with a one-ply heuristic:
// corners first, then edges, then anything.
type Opponent struct {
	rng *rand.Rand
}

// NewOpponent creates an Opponent. A nil rng uses the global generator,
// which is safe for concurrent use. A non-nil rng is not.
func NewOpponent(rng *rand.Rand) *Opponent {
	return &Opponent{rng: rng}
}

// Choose returns one of moves. It returns ErrNoMoves for an empty slice;
// the caller must pass instead.
func (o *Opponent) Choose(moves []Position) (Position, error) {
	if len(moves) == 0 {
		return Position{}, ErrNoMoves
	}

	if corners := filterPositions(moves, Position.IsCorner); len(corners) > 0 {
		return o.randomChoice(corners), nil
	}

	if edges := filterPositions(moves, Position.IsEdge); len(edges) > 0 {
		return o.randomChoice(edges), nil
	}

	return o.randomChoice(moves), nil
}

func (o *Opponent) randomChoice(options []Position) Position {
	var index int
	if o.rng == nil {
		index = rand.Intn(len(options))
	} else {
		index = o.rng.Intn(len(options))
	}
	return options[index]
}

func filterPositions(positions []Position, keep func(Position) bool) []Position {
	var filtered []Position
	for _, pos := range positions {
		if keep(pos) {
			filtered = append(filtered, pos)
		}
	}
	return filtered
}
