// Package tests builds a complete app for route tests, with Redis served by
// miniredis and Postgres replaced by sqlmock.
package tests

import (
	"encoding/base64"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	TestToken    = "test-token"
	TestUser     = "test-user"
	TestPassword = "test-password"
)

// TestApp is an app with in-memory services.
type TestApp struct {
	App      *fiber.App
	Config   *config.ServerConfig
	Redis    *miniredis.Miniredis
	Postgres sqlmock.Sqlmock
}

// NewTestApp creates a TestApp. The opponent moves without delay.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
		_ = db.Close()
	})

	cfg := &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: TestUser,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
		SessionTTL:        config.DefaultSessionTTL,
	}

	services := &services.Services{
		Postgres: sqlx.NewDb(db, "postgres"),
		Redis:    client,
	}

	return &TestApp{
		App:      internal.BuildApp(cfg, services),
		Config:   cfg,
		Redis:    server,
		Postgres: mock,
	}
}

// BasicAuthHeader returns the Authorization header value for the test user.
func BasicAuthHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(TestUser+":"+TestPassword))
}
