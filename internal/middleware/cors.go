package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// CORSConfig configures the CORS middleware
type CORSConfig struct {
	// AllowOrigins lists allowed origins. "*" allows any origin and
	// "*.example.com" allows its subdomains.
	AllowOrigins []string
	// AllowMethods is a list of allowed methods
	AllowMethods []string
	// AllowHeaders is a list of allowed request headers
	AllowHeaders []string
	// ExposeHeaders is a list of response headers readable by browsers
	ExposeHeaders []string
	// MaxAge is how long in seconds a preflight result may be cached
	MaxAge int
}

// DefaultCORSConfig returns default CORS config
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodOptions,
		},
		AllowHeaders: []string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			fiber.HeaderXRequestID,
		},
		// Error responses carry these headers
		ExposeHeaders: []string{
			fiber.HeaderXRequestID,
			fiber.HeaderWWWAuthenticate,
			fiber.HeaderAllow,
			fiber.HeaderRetryAfter,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 86400,
	}
}

// CORS creates a CORS middleware.
// Preflight requests from origins that are not allowed fail with a 403.
func CORS(config ...CORSConfig) fiber.Handler {
	cfg := DefaultCORSConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}

		preflight := c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != ""

		c.Vary(fiber.HeaderOrigin)
		if !originAllowed(cfg.AllowOrigins, origin) {
			if preflight {
				return woops.Forbidden("Origin not allowed", origin)
			}
			return c.Next()
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		if exposeHeaders != "" {
			c.Set(fiber.HeaderAccessControlExposeHeaders, exposeHeaders)
		}

		if preflight {
			c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
			c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
			if cfg.MaxAge > 0 {
				c.Set(fiber.HeaderAccessControlMaxAge, strconv.Itoa(cfg.MaxAge))
			}
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, o := range allowed {
		switch {
		case o == "*" || o == origin:
			return true
		case strings.HasPrefix(o, "*.") && strings.HasSuffix(origin, o[1:]):
			return true
		}
	}
	return false
}
