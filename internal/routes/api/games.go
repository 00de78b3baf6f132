package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/session"
)

// CreateGame starts a new session.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGamePayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	side, err := payload.Side()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view, err := session.NewServiceFromCtx(c).Create(c.Context(), side)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetGame returns the state of a session.
func GetGame(c *fiber.Ctx) error {
	view, err := session.NewServiceFromCtx(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// DeleteGame ends a session.
func DeleteGame(c *fiber.Ctx) error {
	if err := session.NewServiceFromCtx(c).Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PlayMove plays a move for the human.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	pos, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view, err := session.NewServiceFromCtx(c).PlayHuman(c.Context(), c.Params("id"), pos)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// PlayOpponent lets the computer play after the configured delay.
func PlayOpponent(c *fiber.Ctx) error {
	view, err := session.NewServiceFromCtx(c).PlayOpponent(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// RestartGame starts over in the same session.
func RestartGame(c *fiber.Ctx) error {
	view, err := session.NewServiceFromCtx(c).Restart(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}
