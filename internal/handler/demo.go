package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/middleware"
)

// errDemoPanic is the value GET /api/panic panics with
var errDemoPanic = errors.New("demo panic: nil map write")

// Secure handles GET /api/secure. It must be mounted behind RequireBearer.
func Secure(c *fiber.Ctx) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		w, err := RequireWoops(c)
		if err != nil {
			return err
		}
		return w.BadImplementation("secure route is mounted without bearer authentication")
	}

	return c.JSON(fiber.Map{
		"subject": subject,
	})
}

// Panic handles GET /api/panic by panicking. The recover middleware turns
// the panic into an internal server error.
func Panic(c *fiber.Ctx) error {
	panic(errDemoPanic)
}
