package middleware

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	cfg := &config.ServerConfig{
		BasicAuthUsername: "admin",
		BasicAuthPassword: "secret",
		Token:             "test-token",
	}

	app := fiber.New()
	app.Use(Logging())
	app.Get("/protected", AuthOrToken(cfg), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthOrToken(t *testing.T) {
	basic := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	wrongBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:wrong"))

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{"no auth", nil, http.StatusUnauthorized},
		{"token", map[string]string{"x-token": "test-token"}, http.StatusOK},
		{"wrong token", map[string]string{"x-token": "nope"}, http.StatusUnauthorized},
		{"basic auth", map[string]string{"Authorization": basic}, http.StatusOK},
		{"wrong basic auth", map[string]string{"Authorization": wrongBasic}, http.StatusUnauthorized},
	}

	app := newAuthApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/protected", nil)
			require.NoError(t, err)

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusUnauthorized {
				require.Equal(t, `Basic realm="Restricted"`, resp.Header.Get("WWW-Authenticate"))
			}
		})
	}
}
