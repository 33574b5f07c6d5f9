package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gallery-api/domain/services"
	"gallery-api/pkg/config"
	"gallery-api/pkg/utils"
)

const stateCookieName = "drive_oauth_state"

type DriveHandler struct {
	driveService services.DriveService
	secure       bool
}

func NewDriveHandler(driveService services.DriveService, cfg *config.Config) *DriveHandler {
	return &DriveHandler{
		driveService: driveService,
		secure:       cfg.App.Env == "production",
	}
}

// GoogleAuth starts the OAuth consent flow. The random state is stored in a
// short-lived cookie and checked on callback.
func (h *DriveHandler) GoogleAuth(c *fiber.Ctx) error {
	if h.driveService == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Google Drive is not configured", nil)
	}

	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})

	return c.Redirect(h.driveService.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback finishes the OAuth flow and stores the token set.
func (h *DriveHandler) GoogleCallback(c *fiber.Ctx) error {
	if h.driveService == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Google Drive is not configured", nil)
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookieName) {
		return utils.BadRequestResponse(c, "Invalid OAuth state", nil)
	}
	h.clearStateCookie(c)

	code := c.Query("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Missing authorization code", nil)
	}

	if err := h.driveService.HandleCallback(c.Context(), code); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to connect Google Drive", err)
	}

	return c.Redirect("/admin?drive=connected", fiber.StatusTemporaryRedirect)
}

// Status reports the Drive connection state.
func (h *DriveHandler) Status(c *fiber.Ctx) error {
	if h.driveService == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"connected": false, "configured": false})
	}

	status, err := h.driveService.Status(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read Drive status", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, status)
}

// Disconnect drops the stored Drive token.
func (h *DriveHandler) Disconnect(c *fiber.Ctx) error {
	if h.driveService == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Google Drive is not configured", nil)
	}

	if err := h.driveService.Disconnect(c.Context()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to disconnect Google Drive", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true})
}

func (h *DriveHandler) clearStateCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})
}
