package middleware

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/utils"
)

// KeyFunc extracts the identity a policy counts against. Returning false
// skips the policy for this request (e.g. no email in the payload; shape
// validation rejects it later anyway).
type KeyFunc func(c echo.Context) (string, bool)

// RateLimiterConfig contains configuration for one rate limit policy
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Policy      string // policy name, part of the Redis key
	Limit       int    // maximum number of requests per window
	Window      time.Duration
	KeyFunc     KeyFunc
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// It runs before any store access so abusive traffic is shed cheaply, and the
// rejection never names the policy that tripped.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier, ok := config.KeyFunc(c)
			if !ok {
				return next(c)
			}

			key := fmt.Sprintf("rate:%s:%s", config.Policy, identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.Error("Rate limiter error",
					logger.Err(err),
					logger.String("policy", config.Policy),
				)
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}
			if count == 1 {
				// First hit in this window, start the clock.
				if err := config.RedisClient.Expire(ctx, key, config.Window).Err(); err != nil {
					logger.Error("Rate limiter error",
						logger.Err(err),
						logger.String("policy", config.Policy),
					)
					return utils.InternalServerErrorResponse(c, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int64(ttl.Seconds())))
				}
				logger.Warn("Rate limit exceeded",
					logger.String("policy", config.Policy),
					logger.String("identifier", identifier),
					logger.Int64("count", count),
				)
				return utils.TooManyRequestsResponse(c, "Too many requests. Please try again later.")
			}

			return next(c)
		}
	}
}

// IPKey counts against the client IP.
func IPKey() KeyFunc {
	return func(c echo.Context) (string, bool) {
		ip := c.RealIP()
		return ip, ip != ""
	}
}

// EmailKey counts against the normalized email field of a JSON body. The body
// is re-buffered so handlers can still bind it.
func EmailKey() KeyFunc {
	return func(c echo.Context) (string, bool) {
		body, err := utils.PeekBody(c)
		if err != nil {
			return "", false
		}
		var payload struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", false
		}
		email := utils.NormalizeEmail(payload.Email)
		return email, email != ""
	}
}

// ForPolicy builds a middleware from a named config policy.
func ForPolicy(redisClient *redis.Client, name string, policy models.RateLimitPolicy, keyFunc KeyFunc) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Policy:      strings.ToLower(name),
		Limit:       policy.Limit,
		Window:      time.Duration(policy.Window) * time.Second,
		KeyFunc:     keyFunc,
	})
}
