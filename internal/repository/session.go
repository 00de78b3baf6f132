package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores sessions in Redis as JSON, one key per session.
type SessionRepository struct {
	services *services.Services
	ttl      time.Duration
}

func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)      //nolint: errcheck

	return NewSessionRepositoryFromServices(services, cfg.SessionTTL)
}

func NewSessionRepositoryFromServices(services *services.Services, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		services: services,
		ttl:      ttl,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores the session and resets its TTL.
func (repo *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	err = repo.services.Redis.Set(ctx, sessionKey(session.ID), jsonData, repo.ttl).Err()
	if err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// Load retrieves a session. It returns ErrSessionNotFound for unknown or expired IDs.
func (repo *SessionRepository) Load(ctx context.Context, id string) (*models.Session, error) {
	jsonData, err := repo.services.Redis.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(jsonData, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return &session, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (repo *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.services.Redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
