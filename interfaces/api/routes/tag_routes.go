package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
)

func SetupTagRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/tags", h.Tag.List)
}
