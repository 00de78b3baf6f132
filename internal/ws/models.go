package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/models"
)

const (
	EventNewGame = "new_game"
	EventResume  = "resume"
	EventMove    = "move"
	EventRestart = "restart"
	EventState   = "state"
	EventError   = "error"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing is a reply to an Incoming message with the same ID. Opponent
// moves that follow a reply are sent with the same ID as well.
type Outgoing struct {
	ID    int    `json:"id"`
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type NewGameRequest = models.CreateGamePayload

type ResumeRequest struct {
	SessionID string `json:"session_id"`
}

type MoveRequest = models.MovePayload
