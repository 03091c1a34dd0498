package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	return req
}

func TestEchoHandler_Echo(t *testing.T) {
	app := newTestApp()
	NewEchoHandler().RegisterRoutes(app.Group("/api"))

	t.Run("echoes a valid body", func(t *testing.T) {
		resp, err := app.Test(echoRequest(`{"name":"Ada","email":"ada@example.com","age":36}`, fiber.MIMEApplicationJSON))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Ada", body["name"])
		assert.Equal(t, float64(36), body["age"])
	})

	t.Run("rejects other content types", func(t *testing.T) {
		resp, err := app.Test(echoRequest("name=Ada", fiber.MIMEApplicationForm))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, fiber.MIMEApplicationForm, body["data"])
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		resp, err := app.Test(echoRequest(`{"name":`, fiber.MIMEApplicationJSON))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid request body", body["errorMessage"])
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		resp, err := app.Test(echoRequest(`{"email":"not-an-email","age":200}`, fiber.MIMEApplicationJSON))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Unprocessable Entity", body["error"])

		fields, ok := body["data"].([]any)
		require.True(t, ok, "data is %T", body["data"])

		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.(map[string]any)["field"].(string))
		}
		assert.ElementsMatch(t, []string{"name", "email", "age"}, names)
	})
}
