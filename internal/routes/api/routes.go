package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Delete("/games/:id", DeleteGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/opponent", PlayOpponent)
	apiGroup.Post("/games/:id/restart", RestartGame)

	// Archive routes
	archiveGroup := apiGroup.Group("/archive", middleware.AuthOrToken(cfg))
	archiveGroup.Get("/", ListArchivedGames)
	archiveGroup.Get("/stats", GetArchiveStats)
	archiveGroup.Get("/:id", GetArchivedGame)
}
