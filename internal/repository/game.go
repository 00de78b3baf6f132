package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
)

const maxListLimit = 100

var ErrGameNotFound = errors.New("game not found")

// GameRepository handles database operations for archived games.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &GameRepository{
		services: services,
	}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// ArchiveGame stores a finished game. Archiving the same game twice keeps the first copy.
func (repo *GameRepository) ArchiveGame(ctx context.Context, game *models.ArchivedGame) error {
	query := `
		INSERT INTO games (id, human_side, moves, black_discs, white_discs, outcome, started_at, finished_at)
		VALUES (:id, :human_side, :moves, :black_discs, :white_discs, :outcome, :started_at, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, game); err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// GetGame returns one archived game. IDs that are not UUIDs are never found.
func (repo *GameRepository) GetGame(ctx context.Context, id string) (*models.ArchivedGame, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGameNotFound
	}

	query := `
		SELECT id, human_side, moves, black_discs, white_discs, outcome, started_at, finished_at
		FROM games
		WHERE id = $1
	`

	var game models.ArchivedGame
	err := repo.services.Postgres.GetContext(ctx, &game, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("error getting game: %w", err)
	}

	return &game, nil
}

// ListGames returns the most recently finished games, newest first.
func (repo *GameRepository) ListGames(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	query := `
		SELECT id, human_side, moves, black_discs, white_discs, outcome, started_at, finished_at
		FROM games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	games := make([]models.ArchivedGame, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	return games, nil
}

// GetStats counts results over all archived games.
func (repo *GameRepository) GetStats(ctx context.Context) (models.ArchiveStats, error) {
	query := `
		SELECT
			COUNT(*) AS games,
			COUNT(*) FILTER (WHERE outcome = 'black_wins') AS black_wins,
			COUNT(*) FILTER (WHERE outcome = 'white_wins') AS white_wins,
			COUNT(*) FILTER (WHERE outcome = 'draw') AS draws,
			COUNT(*) FILTER (
				WHERE (outcome = 'black_wins' AND human_side = 'black')
				   OR (outcome = 'white_wins' AND human_side = 'white')
			) AS human_wins
		FROM games
	`

	var stats models.ArchiveStats
	if err := repo.services.Postgres.GetContext(ctx, &stats, query); err != nil {
		return models.ArchiveStats{}, fmt.Errorf("error getting stats: %w", err)
	}

	stats.ComputerWins = stats.Games - stats.Draws - stats.HumanWins
	return stats, nil
}
