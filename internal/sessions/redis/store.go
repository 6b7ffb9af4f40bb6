// Package redis provides a Redis-backed session store for deployments that
// run more than one instance behind a load balancer. Values are JSON with a
// native TTL; an expired key simply reads as an invalid session.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asvnatz/strafenkasse/internal/model"
	"github.com/asvnatz/strafenkasse/internal/sessions"
)

const keyPrefix = "strafen"

// Store is a Redis-backed implementation of the session store
type Store struct {
	client *redis.Client
}

// New connects to Redis at the given URL and verifies the connection.
func New(url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// NewWithClient creates a store with an existing client (for testing)
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ sessions.Store = (*Store)(nil)

func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

func (s *Store) Save(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// The TTL comes from the session's own timestamps, not the wall clock;
	// the auth service owns the clock that produced them.
	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	if ttl <= 0 {
		return fmt.Errorf("session %q expires before it is created", session.Token)
	}
	return s.client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrInvalidSession
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
