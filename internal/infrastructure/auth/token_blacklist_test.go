package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Hour))

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_Expiry(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "short", 5*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	revoked, err := blacklist.IsBlacklisted(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_NonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	blacklist := auth.NewInMemoryTokenBlacklist()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "gone", 0))
	revoked, _ := blacklist.IsBlacklisted(ctx, "gone")
	assert.False(t, revoked)
}

func TestRedisTokenBlacklist_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	blacklist := auth.NewRedisTokenBlacklist(client)

	err := blacklist.AddToBlacklist(context.Background(), "jti", time.Minute)
	assert.Error(t, err)

	_, err = blacklist.IsBlacklisted(context.Background(), "jti")
	assert.Error(t, err)

	assert.NoError(t, blacklist.AddToBlacklist(context.Background(), "expired", 0), "no round trip for expired tokens")
}
