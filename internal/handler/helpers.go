package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/middleware"
	"github.com/agenttrace/woops/internal/pkg/woops"
)

// RequireWoops gets the responder attached to the request.
// Routes mounted without the woops middleware get a developer error back.
func RequireWoops(c *fiber.Ctx) (*woops.Responder, error) {
	w, ok := middleware.GetWoops(c)
	if !ok {
		return nil, woops.BadImplementation("woops middleware is not registered for " + c.Path())
	}
	return w, nil
}
