package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
)

// Session is one human playing the computer. Only the placements are
// stored; the game is rebuilt by replaying them.
type Session struct {
	ID        string             `json:"id"`
	HumanSide othello.Side       `json:"human_side"`
	Moves     []othello.Position `json:"moves"`

	// GameID identifies the current game in the archive. It changes on every restart.
	GameID string `json:"game_id"`

	// Archived is set once the finished game has been written to the archive.
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session for a fresh game.
func NewSession(id string, humanSide othello.Side, now time.Time) *Session {
	return &Session{
		ID:        id,
		HumanSide: humanSide,
		Moves:     make([]othello.Position, 0),
		GameID:    uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ComputerSide returns the side played by the opponent.
func (s *Session) ComputerSide() othello.Side {
	return s.HumanSide.Opposite()
}

// Game replays the moves of the session.
func (s *Session) Game() (*othello.Game, error) {
	return othello.NewGameFromMoves(s.Moves)
}

// Update stores the moves of game in the session.
func (s *Session) Update(game *othello.Game, now time.Time) {
	s.Moves = game.Positions()
	s.UpdatedAt = now
}

// Reset clears the moves and starts a new archive game, keeping the ID and sides.
func (s *Session) Reset(now time.Time) {
	s.Moves = make([]othello.Position, 0)
	s.GameID = uuid.New().String()
	s.Archived = false
	s.CreatedAt = now
	s.UpdatedAt = now
}
