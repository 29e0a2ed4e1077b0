package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist records revoked token IDs (jti) until the tokens would have expired anyway
type TokenBlacklist interface {
	// AddToBlacklist revokes a token ID for ttl
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	// IsBlacklisted reports whether a token ID has been revoked
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

const blacklistKeyPrefix = "tenantbill:token:revoked:"

// RedisTokenBlacklist keeps revoked token IDs in Redis so every instance sees them
type RedisTokenBlacklist struct {
	client *redis.Client
	prefix string
}

// NewRedisTokenBlacklist creates a Redis-backed blacklist on an existing client
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client, prefix: blacklistKeyPrefix}
}

// AddToBlacklist implements TokenBlacklist
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	if err := b.client.Set(ctx, b.prefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted implements TokenBlacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	err := b.client.Get(ctx, b.prefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return true, nil
}

// InMemoryTokenBlacklist is a single-instance blacklist for development and tests
type InMemoryTokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewInMemoryTokenBlacklist creates an empty in-memory blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{revoked: make(map[string]time.Time)}
}

// AddToBlacklist implements TokenBlacklist
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()
	// drop expired entries on write so the map stays bounded by live tokens
	for id, exp := range b.revoked {
		if now.After(exp) {
			delete(b.revoked, id)
		}
	}
	b.revoked[jti] = now.Add(ttl)
	return nil
}

// IsBlacklisted implements TokenBlacklist
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	exp, ok := b.revoked[jti]
	return ok && time.Now().Before(exp), nil
}

var (
	_ TokenBlacklist = (*RedisTokenBlacklist)(nil)
	_ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
)
