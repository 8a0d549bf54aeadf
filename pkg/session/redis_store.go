package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "authsession:"

// RedisStore is the Store implementation for multi-instance deployments.
// Sessions are stored as JSON values whose Redis TTL matches the session
// expiry, so the server never has to sweep them. A per-user set of tokens
// supports revoking every session of one user.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix overrides the Redis key namespace.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrEncodingFailed, err)
	}

	ttl := session.TTL()
	if ttl <= 0 {
		return ErrSessionExpired
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.sessionKey(session.Token), data, ttl)
	pipe.SAdd(ctx, s.userKey(session.UserID), session.Token)
	pipe.Expire(ctx, s.userKey(session.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: create: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: get: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}

	// The Redis TTL normally removes expired sessions, but a session can
	// outlive its expiry by a tick; treat it as expired either way.
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	// Look the session up first so the user index stays consistent.
	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("session: delete: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.sessionKey(token))

	var session Session
	if err := json.Unmarshal(data, &session); err == nil && session.UserID != "" {
		pipe.SRem(ctx, s.userKey(session.UserID), token)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts sessions through per-key TTLs.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}

func (s *RedisStore) DeleteByUserID(ctx context.Context, userID string) error {
	key := s.userKey(userID)

	tokens, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("session: delete by user: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, s.sessionKey(token))
	}
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: delete by user: %w", err)
	}
	return nil
}

func (s *RedisStore) sessionKey(token string) string {
	return s.keyPrefix + "token:" + token
}

func (s *RedisStore) userKey(userID string) string {
	return s.keyPrefix + "user:" + userID
}
