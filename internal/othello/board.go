package othello

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid of cells, indexed [row][col].
type Board [Size][Size]Cell

// DiscCounts holds the number of discs per side.
type DiscCounts struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Total returns the number of discs on the board.
func (c DiscCounts) Total() int {
	return c.Black + c.White
}

// NewBoardStart creates a board with the standard four center discs.
func NewBoardStart() Board {
	var b Board
	center := Size / 2

	b[center-1][center-1] = WhiteDisc
	b[center][center] = WhiteDisc
	b[center-1][center] = BlackDisc
	b[center][center-1] = BlackDisc

	return b
}

// NewBoardFromRows creates a board from 8 rows of 8 characters each.
// '.' is empty, 'B' is black and 'W' is white. Whitespace inside rows is ignored.
func NewBoardFromRows(rows ...string) (Board, error) {
	var b Board

	if len(rows) != Size {
		return Board{}, fmt.Errorf("board must have %d rows, got %d", Size, len(rows))
	}

	for row, line := range rows {
		line = strings.Join(strings.Fields(line), "")
		if len(line) != Size {
			return Board{}, fmt.Errorf("row %d must have %d cells, got %d", row+1, Size, len(line))
		}

		for col, r := range line {
			switch r {
			case '.', '-':
				b[row][col] = Empty
			case 'B', 'b', 'X', 'x':
				b[row][col] = BlackDisc
			case 'W', 'w', 'O', 'o':
				b[row][col] = WhiteDisc
			default:
				return Board{}, fmt.Errorf("invalid cell %q at %s", r, Position{Row: row, Col: col})
			}
		}
	}

	return b, nil
}

// NewBoardFromString creates a board from its Rows joined by slashes or newlines.
func NewBoardFromString(s string) (Board, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\n'
	})
	return NewBoardFromRows(rows...)
}

// InBounds returns whether pos is on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.InBounds()
}

// Get returns the cell at pos. The caller must check InBounds first.
func (b *Board) Get(pos Position) Cell {
	return b[pos.Row][pos.Col]
}

// Set sets the cell at pos. The caller must check InBounds first.
func (b *Board) Set(pos Position, cell Cell) {
	b[pos.Row][pos.Col] = cell
}

// Count returns the number of cells equal to cell.
func (b *Board) Count(cell Cell) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// Counts returns the disc count of both sides.
func (b *Board) Counts() DiscCounts {
	return DiscCounts{
		Black: b.Count(BlackDisc),
		White: b.Count(WhiteDisc),
	}
}

// Rows returns the board as 8 strings using '.', 'B' and 'W'.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for row := range Size {
		var sb strings.Builder
		for col := range Size {
			sb.WriteRune(b[row][col].Rune())
		}
		rows[row] = sb.String()
	}
	return rows
}

// String returns the rows joined by slashes, the inverse of NewBoardFromString.
func (b Board) String() string {
	return strings.Join(b.Rows(), "/")
}

// ASCIIArtLines returns the ascii art lines for the board.
// Squares in highlight that are empty are marked with a dot.
func (b *Board) ASCIIArtLines(highlight []Position) []string {
	marked := make(map[Position]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			pos := Position{Row: row, Col: col}

			switch {
			case b.Get(pos) == WhiteDisc:
				line += "○ "
			case b.Get(pos) == BlackDisc:
				line += "● "
			case marked[pos]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}
