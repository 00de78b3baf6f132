package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

// opponent uses the global random source, so it can be shared between requests.
var opponent = othello.NewOpponent(nil)

// NewServiceFromServices creates a Service backed by Redis sessions and the Postgres archive.
func NewServiceFromServices(services *services.Services, cfg *config.ServerConfig) *Service {
	return NewService(
		repository.NewSessionRepositoryFromServices(services, cfg.SessionTTL),
		repository.NewGameRepositoryFromServices(services),
		opponent,
		cfg.OpponentDelay,
	)
}

// NewServiceFromCtx creates a Service from the services and config stored in the fiber context.
func NewServiceFromCtx(c *fiber.Ctx) *Service {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)      //nolint: errcheck

	return NewServiceFromServices(services, cfg)
}
