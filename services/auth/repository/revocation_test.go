package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/temanku/internal/pkg/database"
)

func setupRevocationCache(t *testing.T) (*RevocationCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRevocationCache(database.NewRedisClientFromClient(client)), mr
}

func TestRevoke_SetsEntryWithTTL(t *testing.T) {
	// Arrange
	cache, mr := setupRevocationCache(t)
	defer mr.Close()

	// Act
	err := cache.Revoke(context.Background(), "some-access-token", 10*time.Minute)

	// Assert
	assert.NoError(t, err)
	assert.True(t, mr.Exists(revokedTokenPrefix+"some-access-token"))
	assert.True(t, mr.TTL(revokedTokenPrefix+"some-access-token") > 0)
}

func TestRevoke_ExpiredTokenIsNoop(t *testing.T) {
	// Arrange
	cache, mr := setupRevocationCache(t)
	defer mr.Close()

	// Act
	err := cache.Revoke(context.Background(), "stale-token", 0)

	// Assert
	assert.NoError(t, err)
	assert.False(t, mr.Exists(revokedTokenPrefix+"stale-token"))
}

func TestIsRevoked(t *testing.T) {
	// Arrange
	cache, mr := setupRevocationCache(t)
	defer mr.Close()

	require.NoError(t, cache.Revoke(context.Background(), "dead-token", time.Minute))

	// Act
	revoked, err := cache.IsRevoked(context.Background(), "dead-token")
	fresh, freshErr := cache.IsRevoked(context.Background(), "live-token")

	// Assert
	assert.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, freshErr)
	assert.False(t, fresh)
}

func TestIsRevoked_EntryExpires(t *testing.T) {
	// Arrange
	cache, mr := setupRevocationCache(t)
	defer mr.Close()

	require.NoError(t, cache.Revoke(context.Background(), "short-token", time.Second))
	mr.FastForward(2 * time.Second)

	// Act
	revoked, err := cache.IsRevoked(context.Background(), "short-token")

	// Assert
	assert.NoError(t, err)
	assert.False(t, revoked)
}
