package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agenttrace/woops/internal/pkg/woops"
)

// BearerScheme is the authentication scheme of RequireBearer
const BearerScheme = "Bearer"

// BearerConfig configures bearer token authentication
type BearerConfig struct {
	// Secret signs HS256 tokens
	Secret []byte
	// Issuer is checked when set
	Issuer string
	// Realm is advertised in the WWW-Authenticate challenge
	Realm string
}

// Claims are the JWT claims accepted by RequireBearer
type Claims struct {
	jwt.RegisteredClaims
}

// RequireBearer validates an HS256 bearer token.
// Failures are returned as 401 errors carrying a Bearer challenge.
func RequireBearer(config BearerConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return woops.Unauthorized("Authorization header required", BearerScheme,
				woops.Params("realm", config.Realm))
		}

		claims, err := parseToken(token, config)
		if err != nil {
			return woops.Unauthorized("Invalid or expired token", BearerScheme,
				woops.Params(
					"realm", config.Realm,
					"error", "invalid_token",
					"error_description", describeTokenError(err),
				))
		}

		c.Locals(string(ContextKeySubject), claims.Subject)
		return c.Next()
	}
}

// GetSubject gets the authenticated token subject from context
func GetSubject(c *fiber.Ctx) (string, bool) {
	subject, ok := c.Locals(string(ContextKeySubject)).(string)
	return subject, ok
}

func parseToken(tokenString string, config BearerConfig) (*Claims, error) {
	var opts []jwt.ParserOption
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "unexpected issuer"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "token is invalid"
	}
}

// extractBearerToken extracts the token from the Authorization header
func extractBearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(BearerScheme)+1 && strings.EqualFold(auth[:len(BearerScheme)], BearerScheme) && auth[len(BearerScheme)] == ' ' {
		return strings.TrimSpace(auth[len(BearerScheme)+1:])
	}
	return ""
}
