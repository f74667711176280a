package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zineb0v0/viaCargo/internal/ports"
)

const keyPrefix = "viacargo:session:"

// RedisStore keeps console sessions in Redis with a TTL. Only the
// opaque console token ever reaches the operator's browser; the backend
// cookie and view state stay server-side.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// New verifies connectivity and returns a ready store.
func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// NewWithClient wires an existing client (tests use miniredis here).
func NewWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// NewToken mints an opaque session token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Put stores (or refreshes) a session under its token, resetting the TTL.
func (s *RedisStore) Put(ctx context.Context, session ports.Session) error {
	if session.Token == "" {
		return errors.New("put session: token is empty")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("put session: encode: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+session.Token, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Get loads a session by token.
func (s *RedisStore) Get(ctx context.Context, token string) (ports.Session, error) {
	if token == "" {
		return ports.Session{}, ports.ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Session{}, ports.ErrSessionNotFound
	}
	if err != nil {
		return ports.Session{}, fmt.Errorf("get session: %w", err)
	}

	var session ports.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return ports.Session{}, fmt.Errorf("get session: decode: %w", err)
	}
	return session, nil
}

// Delete removes a session; deleting an unknown token is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
