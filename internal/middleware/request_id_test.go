package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generates request ID when not present", func(t *testing.T) {
		app := fiber.New()

		app.Use(RequestID())
		app.Get("/test", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
		require.NoError(t, err)

		assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
	})

	t.Run("preserves existing request ID from header", func(t *testing.T) {
		app := fiber.New()

		var local string
		app.Use(RequestID())
		app.Get("/test", func(c *fiber.Ctx) error {
			local = GetRequestID(c)
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderXRequestID, "existing-request-id-12345")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "existing-request-id-12345", resp.Header.Get(fiber.HeaderXRequestID))
		assert.Equal(t, "existing-request-id-12345", local)
	})

	t.Run("custom header falls back to the default generator", func(t *testing.T) {
		app := fiber.New()

		app.Use(RequestID(RequestIDConfig{Header: "X-Correlation-ID"}))
		app.Get("/test", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))
	})

	t.Run("does not call generator when ID exists", func(t *testing.T) {
		app := fiber.New()

		calls := 0
		app.Use(RequestID(RequestIDConfig{
			Generator: func() string {
				calls++
				return "generated-id"
			},
		}))
		app.Get("/test", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(fiber.HeaderXRequestID, "existing-id")
		_, err := app.Test(req)
		require.NoError(t, err)

		assert.Zero(t, calls)
	})
}

func TestGetRequestID(t *testing.T) {
	app := fiber.New()

	id := "unset"
	app.Get("/test", func(c *fiber.Ctx) error {
		id = GetRequestID(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Empty(t, id)
}
