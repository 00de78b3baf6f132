package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/reversi/internal/config"
)

const tokenHeader = "x-token"

func unauthorized(c *fiber.Ctx) error {
	// This triggers the browser to show a login dialog
	c.Set("WWW-Authenticate", `Basic realm="Restricted"`)

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// BasicAuth checks the basic auth credentials from the config.
func BasicAuth(cfg *config.ServerConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.BasicAuthUsername: cfg.BasicAuthPassword,
		},
		Realm:        "Restricted",
		Unauthorized: unauthorized,
	})
}

// AuthOrToken accepts either the token header or basic auth.
func AuthOrToken(cfg *config.ServerConfig) fiber.Handler {
	basicAuth := BasicAuth(cfg)

	return func(c *fiber.Ctx) error {
		token := c.Get(tokenHeader)
		if token != "" && token == cfg.Token {
			return c.Next()
		}

		return basicAuth(c)
	}
}
