package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/student-diary/internal/logger"
)

// SessionRepository keeps login sessions in Redis. The key TTL is the idle timeout.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session owner with the given idle timeout.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Infow("redis",
		"key", key,
		"user_id", userID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// GetUserID returns the owner of a live session.
func (r *SessionRepository) GetUserID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("redis",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt session %s: %w", key, err)
	}
	return userID, nil
}

// Touch extends the idle timeout of a live session.
func (r *SessionRepository) Touch(ctx context.Context, sessionID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(sessionID)

	ok, err := r.client.Expire(ctx, key, ttl).Result()
	logger.Log.Infow("redis",
		"key", key,
		"ttl", ttl,
		"result", ok,
		"error", err,
	)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

// Delete ends a session. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("redis",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
