package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/prasetyadi/temanku/internal/pkg/database"
)

const revokedTokenPrefix = "blacklisted_access_token:"

// RevocationCache is the Redis-backed access token denylist. Entries carry a
// TTL equal to the token's remaining lifetime, so the set cleans itself up.
type RevocationCache struct {
	redisClient *database.RedisClient
}

func NewRevocationCache(redisClient *database.RedisClient) *RevocationCache {
	return &RevocationCache{redisClient: redisClient}
}

// Revoke adds the raw access token to the denylist. A non-positive TTL means
// the token already expired and there is nothing to deny.
func (c *RevocationCache) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	err := c.redisClient.Set(ctx, revokedTokenPrefix+token, "1", ttl)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked reports whether the raw access token has been denied.
func (c *RevocationCache) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := c.redisClient.Get(ctx, revokedTokenPrefix+token)
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return true, nil
}
