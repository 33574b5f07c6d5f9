package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	check func() error
}

func NewHealthHandler(check func() error) *HealthHandler {
	return &HealthHandler{check: check}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.check != nil {
		if err := h.check(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
