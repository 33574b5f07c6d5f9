package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
	"gallery-api/interfaces/api/middleware"
)

func SetupPhotoRoutes(api fiber.Router, h *handlers.Handlers) {
	photos := api.Group("/photos")

	// Public reads; visibility filtering happens in the service layer.
	photos.Get("/", h.Photo.List)
	photos.Get("/:id", h.Photo.Get)
	photos.Get("/:id/download", h.Photo.Download)

	// Mutations require an admin session.
	photos.Post("/", middleware.RequireAdmin(), h.Photo.Create)
	photos.Patch("/:id", middleware.RequireAdmin(), h.Photo.Update)
	photos.Delete("/:id", middleware.RequireAdmin(), h.Photo.Delete)
}
