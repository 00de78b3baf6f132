package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

// InitServices connects to Postgres and Redis and makes sure the archive schema exists.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	postgres, err := InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	if err = EnsureSchema(postgres); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
	}, nil
}

// Close closes both connections.
func (s *Services) Close() error {
	pgErr := s.Postgres.Close()
	redisErr := s.Redis.Close()

	if pgErr != nil {
		return fmt.Errorf("error closing postgres: %w", pgErr)
	}
	if redisErr != nil {
		return fmt.Errorf("error closing redis: %w", redisErr)
	}
	return nil
}
