package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the uniform JSON error envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse writes a JSON success envelope with the given payload.
func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse writes a JSON error envelope with the given status code.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := ErrorBody{
		Success: false,
		Message: message,
	}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(status).JSON(body)
}

// UnauthorizedResponse writes a 401 error envelope.
func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusUnauthorized, message, nil)
}

// NotFoundResponse writes a 404 error envelope.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message, nil)
}

// BadRequestResponse writes a 400 error envelope.
func BadRequestResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, err)
}
