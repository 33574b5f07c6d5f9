package routes

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/check", h.Auth.Check)
}
