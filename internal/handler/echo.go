package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/pkg/woops"
	"github.com/agenttrace/woops/internal/validator"
)

// EchoRequest is the body accepted by POST /api/echo
type EchoRequest struct {
	Name    string   `json:"name" validate:"required,max=64"`
	Email   string   `json:"email" validate:"required,email"`
	Age     int      `json:"age" validate:"gte=0,lte=150"`
	Website string   `json:"website,omitempty" validate:"omitempty,url"`
	Tags    []string `json:"tags,omitempty" validate:"max=10,dive,min=1,max=32"`
}

// EchoHandler validates request bodies and echoes them back
type EchoHandler struct{}

// NewEchoHandler creates a new echo handler
func NewEchoHandler() *EchoHandler {
	return &EchoHandler{}
}

// Echo handles POST /api/echo
func (h *EchoHandler) Echo(c *fiber.Ctx) error {
	if !c.Is("json") {
		return woops.UnsupportedMediaType("Content-Type must be application/json", c.Get(fiber.HeaderContentType))
	}

	var req EchoRequest
	if err := c.BodyParser(&req); err != nil {
		return woops.BadRequest("Invalid request body", err.Error())
	}

	if err := validator.Validate(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return woops.BadData("Request validation failed", []validator.ValidationError(errs))
		}
		return err
	}

	return c.JSON(req)
}

// RegisterRoutes registers echo routes
func (h *EchoHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/echo", h.Echo)
}
