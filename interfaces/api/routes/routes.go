package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
	"gallery-api/interfaces/api/middleware"
	"gallery-api/pkg/config"
)

// SetupRoutes registers all API routes
func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	// Session state is resolved once per request; handlers and the
	// RequireAdmin guard both read it from locals.
	app.Use(middleware.WithSession(cfg.Session.CookieName, cfg.Session.Secret))

	SetupHealthRoutes(app, h)

	api := app.Group("/api")
	SetupAuthRoutes(api, h)
	SetupPhotoRoutes(api, h)
	SetupUploadRoutes(api, h)
	SetupTagRoutes(api, h)
	SetupDriveRoutes(api, h)
}
