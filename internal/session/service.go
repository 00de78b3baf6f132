package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

var (
	ErrNotOpponentTurn = errors.New("it is not the opponent's turn")

	// ErrSessionChanged means the session was modified while the opponent was waiting.
	ErrSessionChanged = errors.New("session changed during opponent move")
)

// Store persists sessions between requests.
type Store interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Archive records finished games.
type Archive interface {
	ArchiveGame(ctx context.Context, game *models.ArchivedGame) error
}

// Service plays games between a human and the computer opponent.
type Service struct {
	store    Store
	archive  Archive
	opponent *othello.Opponent

	// delay is waited before every opponent move.
	delay time.Duration

	now func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, archive Archive, opponent *othello.Opponent, delay time.Duration) *Service {
	return &Service{
		store:    store,
		archive:  archive,
		opponent: opponent,
		delay:    delay,
		now:      time.Now,
	}
}

// Create starts a new session. If the human plays White, the opponent moves first.
func (s *Service) Create(ctx context.Context, humanSide othello.Side) (*models.GameView, error) {
	session := models.NewSession(uuid.New().String(), humanSide, s.now())

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Info("Created session", "id", session.ID, "human_side", humanSide)

	return models.NewGameView(session, othello.NewGame(), nil), nil
}

// Get returns the current state of a session.
func (s *Service) Get(ctx context.Context, id string) (*models.GameView, error) {
	session, game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.NewGameView(session, game, nil), nil
}

// PlayHuman plays pos for the human side.
func (s *Service) PlayHuman(ctx context.Context, id string, pos othello.Position) (*models.GameView, error) {
	session, game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.play(ctx, session, game, pos, session.HumanSide)
}

// PlayOpponent waits for the pacing delay and then lets the computer move.
// It returns ErrNotOpponentTurn when the human is to move, and
// ErrSessionChanged when the session was restarted or moved during the delay.
func (s *Service) PlayOpponent(ctx context.Context, id string) (*models.GameView, error) {
	session, game, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsOver() {
		return nil, othello.ErrGameAlreadyOver
	}

	side := session.ComputerSide()
	if game.Turn() != side {
		return nil, ErrNotOpponentTurn
	}

	if err = s.wait(ctx); err != nil {
		return nil, err
	}

	current, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.GameID != session.GameID || !current.UpdatedAt.Equal(session.UpdatedAt) {
		return nil, ErrSessionChanged
	}

	pos, err := s.opponent.Choose(game.LegalMoves())
	if err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	return s.play(ctx, session, game, pos, side)
}

// Restart starts a new game in an existing session.
func (s *Service) Restart(ctx context.Context, id string) (*models.GameView, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Reset(s.now())

	if err = s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Info("Restarted session", "id", session.ID)

	return models.NewGameView(session, othello.NewGame(), nil), nil
}

// Delete ends a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) load(ctx context.Context, id string) (*models.Session, *othello.Game, error) {
	session, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	game, err := session.Game()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to replay session %s: %w", id, err)
	}

	return session, game, nil
}

func (s *Service) play(
	ctx context.Context,
	session *models.Session,
	game *othello.Game,
	pos othello.Position,
	side othello.Side,
) (*models.GameView, error) {
	result, err := game.Apply(pos, side)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session.Update(game, now)

	slog.Debug("Applied move", "id", session.ID, "side", side, "position", pos, "status", result.Status)

	if result.Status == othello.Finished && !session.Archived {
		s.archiveGame(ctx, session, game, now)
	}

	if err = s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return models.NewGameView(session, game, &result), nil
}

// archiveGame writes the finished game to the archive. Failures are logged;
// the game result itself stays valid.
func (s *Service) archiveGame(ctx context.Context, session *models.Session, game *othello.Game, now time.Time) {
	if err := s.archive.ArchiveGame(ctx, models.NewArchivedGame(session, game, now)); err != nil {
		slog.Error("Failed to archive game", "id", session.ID, "error", err)
		return
	}

	session.Archived = true
	slog.Info("Archived game", "id", session.ID, "outcome", game.Outcome())
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
