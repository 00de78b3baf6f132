package models

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/lk16/reversi/internal/othello"
)

// CreateGamePayload represents a request to start a new game.
type CreateGamePayload struct {
	HumanSide string `json:"human_side"`
}

// Side returns the side the human plays. Black is the default.
func (p *CreateGamePayload) Side() (othello.Side, error) {
	if p.HumanSide == "" {
		return othello.Black, nil
	}
	return othello.ParseSide(p.HumanSide)
}

// MovePayload represents a placement by the human.
type MovePayload struct {
	Position string `json:"position"`
}

// Validate validates the move payload and returns the parsed position.
func (p *MovePayload) Validate() (othello.Position, error) {
	if p.Position == "" {
		return othello.Position{}, errors.New("position is empty or missing")
	}

	return othello.ParsePosition(p.Position)
}

// ArchiveStats summarizes all finished games.
type ArchiveStats struct {
	Games        int `json:"games"         db:"games"`
	BlackWins    int `json:"black_wins"    db:"black_wins"`
	WhiteWins    int `json:"white_wins"    db:"white_wins"`
	Draws        int `json:"draws"         db:"draws"`
	HumanWins    int `json:"human_wins"    db:"human_wins"`
	ComputerWins int `json:"computer_wins" db:"-"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}

// MoveList is a list of positions that is stored as a Postgres text array
// in field notation.
type MoveList []othello.Position

// Value implements the driver.Valuer interface for MoveList.
func (m MoveList) Value() (driver.Value, error) {
	fields := make(pq.StringArray, len(m))
	for i, pos := range m {
		fields[i] = pos.String()
	}
	return fields.Value()
}

// Scan implements the sql.Scanner interface for MoveList.
func (m *MoveList) Scan(value interface{}) error {
	if value == nil {
		return errors.New("cannot scan nil into MoveList")
	}

	var fields pq.StringArray
	if err := fields.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into MoveList: %w", value, err)
	}

	moves := make(MoveList, len(fields))
	for i, field := range fields {
		pos, err := othello.ParsePosition(field)
		if err != nil {
			return fmt.Errorf("cannot convert %s to position: %w", field, err)
		}
		moves[i] = pos
	}
	*m = moves

	return nil
}
