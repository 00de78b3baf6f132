package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/repository"
)

const defaultListLimit = 20

// ListArchivedGames returns the most recently finished games.
func ListArchivedGames(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)

	repo := repository.NewGameRepository(c)
	games, err := repo.ListGames(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetArchivedGame returns a finished game with its final board.
func GetArchivedGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)
	game, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	details, err := game.Replay()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "archived game cannot be replayed: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(details)
}

// GetArchiveStats returns win counts over all finished games.
func GetArchiveStats(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)
	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
