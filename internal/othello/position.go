package othello

import (
	"fmt"
	"strings"
)

const (
	Size      = 8
	lastIndex = Size - 1
)

// Position is a square on the board, addressed by row and column.
type Position struct {
	Row int
	Col int
}

// InBounds returns whether both coordinates are on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// IsCorner returns whether the position is one of the four corners.
func (p Position) IsCorner() bool {
	return (p.Row == 0 || p.Row == lastIndex) && (p.Col == 0 || p.Col == lastIndex)
}

// IsEdge returns whether the position is on the outer ring. Corners are edges too.
func (p Position) IsEdge() bool {
	return p.Row == 0 || p.Row == lastIndex || p.Col == 0 || p.Col == lastIndex
}

func (p Position) add(d direction) Position {
	return Position{Row: p.Row + d.dRow, Col: p.Col + d.dCol}
}

// String returns the field notation, e.g. "d3" for row 2, column 3.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition converts a field notation (e.g. "a1", "H8") to a Position.
func ParsePosition(field string) (Position, error) {
	if len(field) != 2 {
		return Position{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	return Position{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

// MustParsePosition is like ParsePosition but panics on invalid input.
func MustParsePosition(field string) Position {
	pos, err := ParsePosition(field)
	if err != nil {
		panic(err)
	}
	return pos
}

// MarshalText encodes the position in field notation.
func (p Position) MarshalText() ([]byte, error) {
	if !p.InBounds() {
		return nil, fmt.Errorf("position out of bounds: %d,%d", p.Row, p.Col)
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a field notation.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// Move is a placement by one side.
type Move struct {
	Side     Side     `json:"side"`
	Position Position `json:"position"`
}
