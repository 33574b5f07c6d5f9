package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
	"gallery-api/interfaces/api/middleware"
)

func SetupUploadRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/upload", middleware.RequireAdmin(), h.Upload.Upload)
}
