package othello

type direction struct {
	dRow, dCol int
}

// directions holds the 8 compass directions.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FlippableFrom returns the opponent discs that would be flipped if side
// placed a disc on pos. An empty result means the placement is illegal.
// Discs are grouped per direction, nearest first.
func (b *Board) FlippableFrom(pos Position, side Side) []Position {
	if !b.InBounds(pos) || b.Get(pos) != Empty {
		return nil
	}

	var flipped []Position
	for _, dir := range directions {
		flipped = append(flipped, b.collectInDirection(pos, dir, side)...)
	}

	return flipped
}

// collectInDirection walks from start along dir over opponent discs. The
// collected discs only count if the walk ends on a disc of side.
func (b *Board) collectInDirection(start Position, dir direction, side Side) []Position {
	var captured []Position
	opponent := side.Opposite().Cell()

	cur := start.add(dir)
	for b.InBounds(cur) && b.Get(cur) == opponent {
		captured = append(captured, cur)
		cur = cur.add(dir)
	}

	if !b.InBounds(cur) || b.Get(cur) != side.Cell() {
		return nil
	}

	return captured
}

// LegalMoves returns all positions side can play on, in row-major order.
func (b *Board) LegalMoves(side Side) []Position {
	moves := make([]Position, 0)

	for row := range Size {
		for col := range Size {
			pos := Position{Row: row, Col: col}
			if b.isLegal(pos, side) {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

// HasMoves returns whether side has at least one legal move.
func (b *Board) HasMoves(side Side) bool {
	for row := range Size {
		for col := range Size {
			if b.isLegal(Position{Row: row, Col: col}, side) {
				return true
			}
		}
	}
	return false
}

func (b *Board) isLegal(pos Position, side Side) bool {
	return b.Get(pos) == Empty && len(b.FlippableFrom(pos, side)) > 0
}
