package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/constants"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Limit       int           // Maximum number of requests per window
	Period      time.Duration // Window length
}

// RateLimiterMiddleware limits requests per route and caller using a
// windowed counter in Redis. Authenticated callers are keyed by user ID,
// anonymous ones by client IP.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				identifier = userID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}

			// First hit in the window owns the expiry.
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					return utils.InternalServerErrorResponse(c, "Rate limiter error")
				}
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// IPRateLimiter guards unauthenticated endpoints per client IP. Returns a
// pass-through middleware when rate limiting is disabled.
func IPRateLimiter(cfg models.RateLimitConfig, redisClient *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || redisClient == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       cfg.Requests,
		Period:      time.Duration(cfg.WindowSeconds) * time.Second,
	})
}
