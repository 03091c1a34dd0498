package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenttrace/woops/internal/handler"
	"github.com/agenttrace/woops/internal/middleware"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health check routes
	deps.Health.RegisterRoutes(app)

	// Prometheus metrics
	if deps.Config.Metrics.Enabled {
		app.Get(deps.Config.Metrics.Path, middleware.MetricsHandler())
	}

	api := app.Group("/api")
	if deps.Redis != nil {
		api.Use(middleware.RateLimit(deps.Redis, deps.RateLimit))
	}
	{
		deps.Catalog.RegisterRoutes(api)
		deps.Echo.RegisterRoutes(api)
		deps.Items.RegisterRoutes(api)

		api.Get("/secure", middleware.RequireBearer(deps.Bearer), handler.Secure)
		api.Get("/panic", handler.Panic)
	}
}
