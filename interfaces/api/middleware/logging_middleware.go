package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gallery-api/pkg/logger"
)

// RequestLogger records method, path, status and duration for every request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := logger.LogEntry{
			Level:    logger.LevelInfo,
			Category: logger.CategoryAPI,
			Action:   "request",
			Message:  c.Method() + " " + c.Path(),
			Duration: time.Since(start).String(),
			Data: map[string]interface{}{
				"status": c.Response().StatusCode(),
				"ip":     c.IP(),
			},
		}
		if err != nil {
			entry.Level = logger.LevelError
			entry.Error = err.Error()
		}
		logger.Default().Log(entry)

		return err
	}
}
