package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
	"gallery-api/interfaces/api/middleware"
)

func SetupDriveRoutes(api fiber.Router, h *handlers.Handlers) {
	google := api.Group("/auth/google")

	google.Get("/", middleware.RequireAdmin(), h.Drive.GoogleAuth)
	// Google redirects the browser here, so the route itself is open; the
	// state cookie binds it to the admin who started the flow.
	google.Get("/callback", h.Drive.GoogleCallback)
	google.Get("/status", middleware.RequireAdmin(), h.Drive.Status)
	google.Post("/disconnect", middleware.RequireAdmin(), h.Drive.Disconnect)
}
