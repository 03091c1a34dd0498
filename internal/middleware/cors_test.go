package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSApp(origins ...string) *fiber.App {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = origins

	app := newTestApp()
	app.Use(CORS(cfg))
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func preflight(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set(fiber.HeaderOrigin, origin)
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodGet)
	return req
}

func TestCORS(t *testing.T) {
	t.Run("answers preflight for allowed origins", func(t *testing.T) {
		resp, err := newCORSApp("https://app.example.com").Test(preflight("https://app.example.com"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "https://app.example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "86400", resp.Header.Get(fiber.HeaderAccessControlMaxAge))
		assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), http.MethodGet)
	})

	t.Run("allows subdomain wildcards", func(t *testing.T) {
		resp, err := newCORSApp("*.example.com").Test(preflight("https://api.example.com"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("rejects preflight for other origins", func(t *testing.T) {
		resp, err := newCORSApp("https://app.example.com").Test(preflight("https://evil.test"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

		body := decodeJSON(t, resp)
		assert.Equal(t, "Origin not allowed", body["errorMessage"])
		assert.Equal(t, "https://evil.test", body["data"])
	})

	t.Run("simple requests from other origins get no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://evil.test")

		resp, err := newCORSApp("https://app.example.com").Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})

	t.Run("exposes error headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://app.example.com")

		resp, err := newCORSApp("*").Test(req)
		require.NoError(t, err)

		exposed := resp.Header.Get(fiber.HeaderAccessControlExposeHeaders)
		assert.Contains(t, exposed, fiber.HeaderWWWAuthenticate)
		assert.Contains(t, exposed, fiber.HeaderAllow)
	})
}
