package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/session"
)

// errorStatus maps errors from the session service and repositories to status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound), errors.Is(err, repository.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, othello.ErrIllegalMove),
		errors.Is(err, othello.ErrGameAlreadyOver),
		errors.Is(err, session.ErrNotOpponentTurn),
		errors.Is(err, session.ErrSessionChanged):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
