package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	// Max requests per window
	Max int
	// Window duration
	Window time.Duration
	// Key generator function
	KeyGenerator func(*fiber.Ctx) string
	// Skip function
	Skip func(*fiber.Ctx) bool
	// Logger for Redis failures
	Logger *zap.Logger
}

// DefaultRateLimitConfig returns default rate limit config
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Max:    100,
		Window: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Skip:   HealthSkipper,
		Logger: zap.NewNop(),
	}
}

// RateLimitData is sent as the data of a 429 response
type RateLimitData struct {
	Limit      int `json:"limit"`
	WindowSecs int `json:"windowSeconds"`
	RetryAfter int `json:"retryAfter"`
}

// RateLimit creates a sliding window rate limiter backed by Redis.
// Requests over the limit fail with a 429; Redis failures let requests through.
func RateLimit(client *redis.Client, config ...RateLimitConfig) fiber.Handler {
	cfg := DefaultRateLimitConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = DefaultRateLimitConfig().KeyGenerator
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	windowSecs := int(cfg.Window.Seconds())

	return func(c *fiber.Ctx) error {
		if cfg.Skip != nil && cfg.Skip(c) {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s", cfg.KeyGenerator(c))
		now := time.Now()
		windowStart := now.Add(-cfg.Window).UnixNano()
		ctx := c.UserContext()

		pipe := client.TxPipeline()
		pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
		count := pipe.ZCard(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			cfg.Logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}

		reset := strconv.FormatInt(now.Add(cfg.Window).Unix(), 10)
		c.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
		c.Set("X-RateLimit-Reset", reset)

		if count.Val() >= int64(cfg.Max) {
			c.Set("X-RateLimit-Remaining", "0")
			return woops.TooManyRequests("Rate limit exceeded. Please try again later.", RateLimitData{
				Limit:      cfg.Max,
				WindowSecs: windowSecs,
				RetryAfter: windowSecs,
			}).WithHeader(fiber.HeaderRetryAfter, strconv.Itoa(windowSecs))
		}

		pipe = client.TxPipeline()
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: fmt.Sprintf("%d:%s", now.UnixNano(), GetRequestID(c)),
		})
		pipe.Expire(ctx, key, cfg.Window*2)
		if _, err := pipe.Exec(ctx); err != nil {
			cfg.Logger.Warn("rate limiter unavailable", zap.Error(err))
		}

		c.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(cfg.Max)-count.Val()-1, 10))
		return c.Next()
	}
}
