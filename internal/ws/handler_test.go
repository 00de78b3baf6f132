package ws

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	incoming [][]byte
	msgType  int
	written  [][]byte
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	if len(c.incoming) == 0 {
		return 0, nil, io.EOF
	}
	msg := c.incoming[0]
	c.incoming = c.incoming[1:]

	msgType := c.msgType
	if msgType == 0 {
		msgType = websocket.TextMessage
	}
	return msgType, msg, nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.written = append(c.written, data)
	return nil
}

type nopArchive struct{}

func (nopArchive) ArchiveGame(context.Context, *models.ArchivedGame) error {
	return nil
}

type reply struct {
	ID    int             `json:"id"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newTestService(t *testing.T) *session.Service {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := repository.NewSessionRepositoryFromServices(&services.Services{Redis: client}, 0)
	opponent := othello.NewOpponent(rand.New(rand.NewSource(1)))

	return session.NewService(store, nopArchive{}, opponent, 0)
}

// run feeds messages to a new handler and returns everything it wrote.
func run(t *testing.T, messages ...string) []reply {
	t.Helper()

	conn := &fakeConn{}
	for _, msg := range messages {
		conn.incoming = append(conn.incoming, []byte(msg))
	}

	handler := NewHandler(conn, newTestService(t))
	err := handler.Handle()
	require.ErrorIs(t, err, io.EOF)

	replies := make([]reply, len(conn.written))
	for i, msg := range conn.written {
		require.NoError(t, json.Unmarshal(msg, &replies[i]))
	}
	return replies
}

func decodeView(t *testing.T, r reply) *models.GameView {
	t.Helper()

	require.Equal(t, EventState, r.Event, "unexpected error: %s", r.Error)

	var view models.GameView
	require.NoError(t, json.Unmarshal(r.Data, &view))
	return &view
}

func TestHandler_NewGame(t *testing.T) {
	replies := run(t, `{"event":"new_game","id":1,"data":{"human_side":"black"}}`)
	require.Len(t, replies, 1)
	require.Equal(t, 1, replies[0].ID)

	view := decodeView(t, replies[0])
	require.NotEmpty(t, view.ID)
	require.True(t, view.IsHumanTurn())
	require.Equal(t, othello.DiscCounts{Black: 2, White: 2}, view.Counts)
}

func TestHandler_NewGame_DefaultSide(t *testing.T) {
	replies := run(t, `{"event":"new_game","id":1}`)
	require.Len(t, replies, 1)

	view := decodeView(t, replies[0])
	require.Equal(t, othello.Black, view.HumanSide)
}

func TestHandler_NewGame_HumanWhite(t *testing.T) {
	replies := run(t, `{"event":"new_game","id":3,"data":{"human_side":"white"}}`)

	// The opponent opens right away.
	require.Len(t, replies, 2)

	first := decodeView(t, replies[0])
	require.Equal(t, 0, first.MoveCount)

	second := decodeView(t, replies[1])
	require.Equal(t, 3, replies[1].ID)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, second.MoveCount)
	require.True(t, second.IsHumanTurn())
}

func TestHandler_MoveThenOpponent(t *testing.T) {
	replies := run(t,
		`{"event":"new_game","id":1,"data":{"human_side":"black"}}`,
		`{"event":"move","id":2,"data":{"position":"d3"}}`,
	)
	require.Len(t, replies, 3)

	human := decodeView(t, replies[1])
	require.Equal(t, 2, replies[1].ID)
	require.Equal(t, othello.MustParsePosition("d3"), human.LastMove.Position)
	require.Equal(t, othello.Continued, human.Result.Status)
	require.False(t, human.IsHumanTurn())

	computer := decodeView(t, replies[2])
	require.Equal(t, othello.White, computer.LastMove.Side)
	require.Equal(t, 2, computer.MoveCount)
	require.True(t, computer.IsHumanTurn())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "move before new game",
			messages: []string{`{"event":"move","id":1,"data":{"position":"d3"}}`},
			want:     errNoSession.Error(),
		},
		{
			name:     "restart before new game",
			messages: []string{`{"event":"restart","id":1}`},
			want:     errNoSession.Error(),
		},
		{
			name:     "empty event",
			messages: []string{`{"id":1}`},
			want:     "event field is either empty or missing",
		},
		{
			name:     "unknown event",
			messages: []string{`{"event":"undo","id":1}`},
			want:     "unknown event: undo",
		},
		{
			name:     "unknown session",
			messages: []string{`{"event":"resume","id":1,"data":{"session_id":"nope"}}`},
			want:     repository.ErrSessionNotFound.Error(),
		},
		{
			name:     "invalid side",
			messages: []string{`{"event":"new_game","id":1,"data":{"human_side":"red"}}`},
			want:     "red",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replies := run(t, tt.messages...)
			require.Len(t, replies, 1)
			require.Equal(t, EventError, replies[0].Event)
			require.Equal(t, 1, replies[0].ID)
			require.Contains(t, replies[0].Error, tt.want)
		})
	}
}

func TestHandler_IllegalMoveKeepsConnection(t *testing.T) {
	replies := run(t,
		`{"event":"new_game","id":1}`,
		`{"event":"move","id":2,"data":{"position":"a1"}}`,
		`{"event":"move","id":3,"data":{"position":"z9"}}`,
		`{"event":"move","id":4,"data":{"position":"f5"}}`,
	)
	require.Len(t, replies, 5)

	require.Equal(t, EventError, replies[1].Event)
	require.Contains(t, replies[1].Error, othello.ErrIllegalMove.Error())
	require.Equal(t, EventError, replies[2].Event)

	view := decodeView(t, replies[3])
	require.Equal(t, 4, replies[3].ID)
	require.Equal(t, 1, view.MoveCount)

	view = decodeView(t, replies[4])
	require.Equal(t, 2, view.MoveCount)
}

func TestHandler_Restart(t *testing.T) {
	replies := run(t,
		`{"event":"new_game","id":1}`,
		`{"event":"move","id":2,"data":{"position":"c4"}}`,
		`{"event":"restart","id":3}`,
	)
	require.Len(t, replies, 4)

	started := decodeView(t, replies[0])
	restarted := decodeView(t, replies[3])
	require.Equal(t, started.ID, restarted.ID)
	require.Equal(t, 0, restarted.MoveCount)
	require.Nil(t, restarted.LastMove)
}

func TestHandler_Resume(t *testing.T) {
	service := newTestService(t)

	view, err := service.Create(context.Background(), othello.Black)
	require.NoError(t, err)

	conn := &fakeConn{incoming: [][]byte{
		[]byte(`{"event":"resume","id":1,"data":{"session_id":"` + view.ID + `"}}`),
		[]byte(`{"event":"move","id":2,"data":{"position":"e6"}}`),
	}}

	handler := NewHandler(conn, service)
	require.ErrorIs(t, handler.Handle(), io.EOF)
	require.Len(t, conn.written, 3)

	loaded, err := service.Get(context.Background(), view.ID)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.MoveCount)
}

func TestHandler_BadMessages(t *testing.T) {
	conn := &fakeConn{incoming: [][]byte{[]byte(`not json`)}}
	err := NewHandler(conn, newTestService(t)).Handle()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)

	conn = &fakeConn{incoming: [][]byte{[]byte(`{}`)}, msgType: websocket.BinaryMessage}
	err = NewHandler(conn, newTestService(t)).Handle()
	require.ErrorContains(t, err, "unexpected message type")
}
