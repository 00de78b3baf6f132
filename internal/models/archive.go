package models

import (
	"time"

	"github.com/lk16/reversi/internal/othello"
)

// ArchivedGame is a finished game as stored in Postgres.
type ArchivedGame struct {
	ID         string    `json:"id"          db:"id"`
	HumanSide  string    `json:"human_side"  db:"human_side"`
	Moves      MoveList  `json:"moves"       db:"moves"`
	BlackDiscs int       `json:"black_discs" db:"black_discs"`
	WhiteDiscs int       `json:"white_discs" db:"white_discs"`
	Outcome    string    `json:"outcome"     db:"outcome"`
	StartedAt  time.Time `json:"started_at"  db:"started_at"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// NewArchivedGame creates the archive record of a finished session.
func NewArchivedGame(session *Session, game *othello.Game, finishedAt time.Time) *ArchivedGame {
	counts := game.DiscCounts()

	return &ArchivedGame{
		ID:         session.GameID,
		HumanSide:  session.HumanSide.String(),
		Moves:      game.Positions(),
		BlackDiscs: counts.Black,
		WhiteDiscs: counts.White,
		Outcome:    game.Outcome().String(),
		StartedAt:  session.CreatedAt,
		FinishedAt: finishedAt,
	}
}

// ArchivedGameDetails is an archived game with its replayed final board.
type ArchivedGameDetails struct {
	ArchivedGame
	Board []string `json:"board"`
}

// Replay rebuilds the final position from the stored moves.
func (g *ArchivedGame) Replay() (*ArchivedGameDetails, error) {
	game, err := othello.NewGameFromMoves(g.Moves)
	if err != nil {
		return nil, err
	}

	board := game.Board()
	return &ArchivedGameDetails{
		ArchivedGame: *g,
		Board:        board.Rows(),
	}, nil
}
