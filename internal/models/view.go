package models

import (
	"github.com/lk16/reversi/internal/othello"
)

// GameView is everything a client needs to render a session.
type GameView struct {
	ID        string             `json:"id"`
	HumanSide othello.Side       `json:"human_side"`
	Board     []string           `json:"board"`
	Turn      othello.Side       `json:"turn"`
	IsOver    bool               `json:"is_over"`
	Outcome   othello.Outcome    `json:"outcome"`
	Counts    othello.DiscCounts `json:"counts"`
	MoveCount int                `json:"move_count"`

	// LegalMoves is empty once the game is over.
	LegalMoves []othello.Position `json:"legal_moves"`

	LastMove *othello.LastMove `json:"last_move,omitempty"`

	// Result is set when the view is the response to a move.
	Result *othello.ApplyResult `json:"result,omitempty"`
}

// NewGameView builds the view of a session with its replayed game.
func NewGameView(session *Session, game *othello.Game, result *othello.ApplyResult) *GameView {
	board := game.Board()

	view := &GameView{
		ID:         session.ID,
		HumanSide:  session.HumanSide,
		Board:      board.Rows(),
		Turn:       game.Turn(),
		IsOver:     game.IsOver(),
		Outcome:    game.Outcome(),
		Counts:     game.DiscCounts(),
		MoveCount:  game.MoveCount(),
		LegalMoves: game.LegalMoves(),
		Result:     result,
	}

	if lastMove, ok := game.LastMove(); ok {
		view.LastMove = &lastMove
	}

	return view
}

// IsHumanTurn returns whether the human should move next.
func (v *GameView) IsHumanTurn() bool {
	return !v.IsOver && v.Turn == v.HumanSide
}
