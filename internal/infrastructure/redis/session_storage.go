package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gstippagol/habit/internal/config"
	"github.com/gstippagol/habit/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session does not exist or expired.
var ErrSessionNotFound = errors.New("session not found")

// NewClient creates a Redis client from configuration and verifies
// connectivity.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// SessionStorage handles session storage in Redis.
type SessionStorage struct {
	client     *redis.Client
	sessionTTL time.Duration
}

// NewSessionStorage creates a new session storage.
func NewSessionStorage(client *redis.Client, sessionTTL time.Duration) *SessionStorage {
	return &SessionStorage{
		client:     client,
		sessionTTL: sessionTTL,
	}
}

func (s *SessionStorage) sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID.String())
}

func (s *SessionStorage) tokenHashKey(tokenHash string) string {
	return fmt.Sprintf("token:%s", tokenHash)
}

// Set stores a session in Redis with the token hash lookup entry.
func (s *SessionStorage) Set(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	if err := s.client.Set(ctx, s.tokenHashKey(session.TokenHash), session.ID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token hash mapping: %w", err)
	}

	return nil
}

// Get retrieves a session by ID.
func (s *SessionStorage) Get(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &entity.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session, nil
}

// Delete removes a session and its token hash mapping.
func (s *SessionStorage) Delete(ctx context.Context, session *entity.Session) error {
	if err := s.client.Del(ctx, s.sessionKey(session.ID), s.tokenHashKey(session.TokenHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
