package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gallery-api/domain/dto"
	"gallery-api/domain/services"
	"gallery-api/pkg/config"
	"gallery-api/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
	validate    *validator.Validate
	cookieName  string
	secure      bool
}

func NewAuthHandler(authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
		cookieName:  cfg.Session.CookieName,
		secure:      cfg.App.Env == "production",
	}
}

// Login verifies the shared admin secret and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, "Code is required", err)
	}

	token, err := h.authService.Login(req.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid code")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, dto.LoginResponse{Success: true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, dto.LoginResponse{Success: true})
}

// Check reports whether the caller holds a valid session.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, dto.CheckResponse{
		Authenticated: utils.IsAdmin(c),
	})
}
