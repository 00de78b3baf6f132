package othello

import (
	"fmt"
	"strings"
)

// Cell is the content of a single square on the board.
type Cell int

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Side is one of the two players. Black always moves first.
type Side int

const (
	Black Side = iota
	White
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Black {
		return White
	}
	return Black
}

// Cell returns the disc this side places.
func (s Side) Cell() Cell {
	if s == Black {
		return BlackDisc
	}
	return WhiteDisc
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// ParseSide parses "black"/"b" or "white"/"w", ignoring case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid side: %q", s)
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Side returns the side owning the disc. It returns false for an empty cell.
func (c Cell) Side() (Side, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return Black, false
	}
}

// Rune returns the single character used in board strings.
func (c Cell) Rune() rune {
	switch c {
	case BlackDisc:
		return 'B'
	case WhiteDisc:
		return 'W'
	default:
		return '.'
	}
}
