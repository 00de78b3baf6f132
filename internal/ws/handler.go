package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/session"
)

const (
	requestTimeout = 5 * time.Second

	// opponentTimeout bounds a single opponent move including its delay.
	opponentTimeout = 30 * time.Second
)

var errNoSession = errors.New("no game started, send new_game or resume first")

// Conn is the part of a websocket connection used by the Handler.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
}

// Handler plays one session over a websocket connection. After every human
// move it plays the opponent's replies, each after the pacing delay.
type Handler struct {
	service *session.Service
	ws      Conn

	sessionID string
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, service *session.Service) *Handler {
	return &Handler{service: service, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// Handle handles the websocket connection until reading or writing fails.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return err
		}

		if err = h.handleMessage(req); err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}
	}
}

// handleMessage answers one message. Game errors are sent to the client;
// only connection errors are returned.
func (h *Handler) handleMessage(req *Incoming) error {
	view, err := h.dispatch(req)
	if err != nil {
		return h.writeMessage(&Outgoing{ID: req.ID, Event: EventError, Error: err.Error()})
	}

	if err = h.writeMessage(&Outgoing{ID: req.ID, Event: EventState, Data: view}); err != nil {
		return err
	}

	return h.playOpponent(req.ID, view)
}

func (h *Handler) dispatch(req *Incoming) (*models.GameView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Event {
	case "":
		return nil, errors.New("event field is either empty or missing")
	case EventNewGame:
		return h.handleNewGame(ctx, req)
	case EventResume:
		return h.handleResume(ctx, req)
	case EventMove:
		return h.handleMove(ctx, req)
	case EventRestart:
		return h.handleRestart(ctx)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

func (h *Handler) handleNewGame(ctx context.Context, req *Incoming) (*models.GameView, error) {
	var reqData NewGameRequest
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("new game request unmarshal error: %w", err)
		}
	}

	side, err := reqData.Side()
	if err != nil {
		return nil, err
	}

	view, err := h.service.Create(ctx, side)
	if err != nil {
		return nil, err
	}

	h.sessionID = view.ID
	return view, nil
}

func (h *Handler) handleResume(ctx context.Context, req *Incoming) (*models.GameView, error) {
	var reqData ResumeRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("resume request unmarshal error: %w", err)
	}

	view, err := h.service.Get(ctx, reqData.SessionID)
	if err != nil {
		return nil, err
	}

	h.sessionID = view.ID
	return view, nil
}

func (h *Handler) handleMove(ctx context.Context, req *Incoming) (*models.GameView, error) {
	if h.sessionID == "" {
		return nil, errNoSession
	}

	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("move request unmarshal error: %w", err)
	}

	pos, err := reqData.Validate()
	if err != nil {
		return nil, err
	}

	return h.service.PlayHuman(ctx, h.sessionID, pos)
}

func (h *Handler) handleRestart(ctx context.Context) (*models.GameView, error) {
	if h.sessionID == "" {
		return nil, errNoSession
	}

	return h.service.Restart(ctx, h.sessionID)
}

// playOpponent plays opponent moves until the human is to move or the game is
// over. The human passes when the opponent moves several times in a row.
func (h *Handler) playOpponent(id int, view *models.GameView) error {
	for !view.IsOver && !view.IsHumanTurn() {
		next, err := h.opponentMove(view.ID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) ||
				errors.Is(err, othello.ErrGameAlreadyOver) ||
				errors.Is(err, session.ErrSessionChanged) {
				return h.writeMessage(&Outgoing{ID: id, Event: EventError, Error: err.Error()})
			}
			return fmt.Errorf("opponent move failed: %w", err)
		}

		if err = h.writeMessage(&Outgoing{ID: id, Event: EventState, Data: next}); err != nil {
			return err
		}

		view = next
	}

	return nil
}

func (h *Handler) opponentMove(id string) (*models.GameView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opponentTimeout)
	defer cancel()

	return h.service.PlayOpponent(ctx, id)
}
