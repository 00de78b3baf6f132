package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultOpponentDelay = 600 * time.Millisecond
	DefaultSessionTTL    = 24 * time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool

	// OpponentDelay is the pause before the computer plays, so its moves
	// don't appear instantly.
	OpponentDelay time.Duration

	// SessionTTL is how long an untouched session is kept in Redis.
	SessionTTL time.Duration
}

// LoadServerConfig loads configuration from environment variables. Values
// from a .env file in the working directory are used for unset variables.
func LoadServerConfig() *ServerConfig {
	loadDotEnv()

	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:          getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL:       getEnvMust("REVERSI_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_BASIC_AUTH_PASS"),
		Token:             getEnvMust("REVERSI_TOKEN"),
		Prefork:           getEnvMustBool("REVERSI_PREFORK"),
		OpponentDelay:     getEnvDuration("REVERSI_OPPONENT_DELAY", DefaultOpponentDelay),
		SessionTTL:        getEnvDuration("REVERSI_SESSION_TTL", DefaultSessionTTL),
	}
}

func loadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		slog.Debug("Loaded .env file")
		return
	}

	if !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvDuration returns the duration in the environment variable, or
// fallback when it is not set. An invalid value is fatal.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	duration, err := parseDuration(os.Getenv(key), fallback)
	if err != nil {
		slog.Error("Cannot load environment variable", "key", key, "error", err)
		os.Exit(1)
	}
	return duration
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}

	if duration < 0 {
		return 0, fmt.Errorf("duration must not be negative, got %s", duration)
	}

	return duration, nil
}
