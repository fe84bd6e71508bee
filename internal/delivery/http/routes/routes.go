package routes

import (
	v1 "career-compass/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the health endpoint at the root and the versioned API
// under /api/v1.
func Register(app *fiber.App, d v1.Deps) {
	if app == nil {
		return
	}

	if d.Health != nil {
		d.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), d)
}
