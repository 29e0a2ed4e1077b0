//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisIdempotencyStore_Integration(t *testing.T) {
	client := startRedis(t)
	store := NewRedisIdempotencyStore(client, "test:idem:")
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, "test:idem:k1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	require.NoError(t, store.Release(ctx, "k1"))
	ok, err = store.Reserve(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisTokenBlacklist_Integration(t *testing.T) {
	client := startRedis(t)
	blacklist := auth.NewRedisTokenBlacklist(client)
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
