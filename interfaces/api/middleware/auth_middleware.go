package middleware

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/pkg/utils"
)

// WithSession reads the session cookie on every request and records the
// result in locals. It never rejects; handlers downgrade gracefully for
// anonymous callers.
func WithSession(cookieName, sessionSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		isAdmin := utils.ValidateSessionToken(token, sessionSecret) == nil
		c.Locals("is_admin", isAdmin)
		return c.Next()
	}
}

// RequireAdmin rejects requests that did not present a valid admin session.
// It assumes WithSession already ran.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !utils.IsAdmin(c) {
			return utils.UnauthorizedResponse(c, "Authentication required")
		}
		return c.Next()
	}
}
