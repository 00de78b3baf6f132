package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logging logs route, status code and response time of every request.
func Logging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler runs after us, so derive the status it will set.
			status = fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		latency := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

		slog.Info("Request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", latency,
		)

		return err
	}
}
