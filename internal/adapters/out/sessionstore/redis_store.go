// Package sessionstore keeps per-user conversation sessions in Redis. Each
// session lives under its own key with a TTL, so concurrent users never share
// state and abandoned dialogs expire on their own.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"agrikart/internal/core/ports"
)

const keyPrefix = "session:"

// RedisSessionStore implements SessionStore on top of a Redis client.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a session store using the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Get retrieves the user's session. Returns ports.ErrSessionNotFound when the
// key is absent or has expired.
func (s *RedisSessionStore) Get(ctx context.Context, userID string) (ports.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.Session{}, ports.ErrSessionNotFound
		}
		return ports.Session{}, err
	}

	var session ports.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return ports.Session{}, fmt.Errorf("corrupt session for %s: %w", userID, err)
	}

	return session, nil
}

// Set stores the user's session and resets its expiry to ttl from now.
func (s *RedisSessionStore) Set(
	ctx context.Context,
	userID string,
	session ports.Session,
	ttl time.Duration,
) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+userID, payload, ttl).Err()
}

// Delete removes the user's session, ending the conversation.
func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, keyPrefix+userID).Err()
}
