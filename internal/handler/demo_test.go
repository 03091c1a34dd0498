package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/middleware"
	"github.com/agenttrace/woops/internal/pkg/woops"
)

func TestSecure(t *testing.T) {
	bearer := middleware.BearerConfig{Secret: []byte("secret"), Realm: "woops-api"}

	app := newTestApp()
	app.Get("/api/secure", middleware.RequireBearer(bearer), Secure)
	app.Get("/api/unguarded", Secure)

	t.Run("returns the token subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}).SignedString(bearer.Secret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/secure", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "user-42", decodeBody(t, resp)["subject"])
	})

	t.Run("challenges without a token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/secure", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, `Bearer realm="woops-api"`, resp.Header.Get(fiber.HeaderWWWAuthenticate))
	})

	t.Run("flags a missing guard as a developer error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/unguarded", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["isDeveloperError"])
	})
}

func TestPanic(t *testing.T) {
	app := newTestApp()
	app.Use(middleware.Recover(zap.NewNop()))
	app.Get("/api/panic", Panic)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, woops.InternalErrorMessage, body["errorMessage"])
	assert.Equal(t, map[string]any{"message": "panic: " + errDemoPanic.Error()}, body["origin"])
}
