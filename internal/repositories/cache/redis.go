// Package cache holds the session token store. The browser's former
// localStorage "token" key becomes a server-side key-value entry per
// session: the bearer token a user presented at login is kept here, and
// its absence means the session is not logged in.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisTokenStore persists session tokens in Redis with a TTL.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

// SetToken stores the token for the session, refreshing its TTL.
func (s *RedisTokenStore) SetToken(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, tokenKey(sessionID), token, s.ttl).Err()
}

// Token returns the stored token, or "" when the session has none.
func (s *RedisTokenStore) Token(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, tokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteToken drops the session's token.
func (s *RedisTokenStore) DeleteToken(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, tokenKey(sessionID)).Err()
}

// HealthCheck pings Redis.
func (s *RedisTokenStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

func tokenKey(sessionID string) string {
	return "session:token:" + sessionID
}
