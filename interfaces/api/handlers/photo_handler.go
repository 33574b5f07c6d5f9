package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gallery-api/domain/dto"
	"gallery-api/domain/services"
	"gallery-api/pkg/utils"
)

type PhotoHandler struct {
	photoService services.PhotoService
	validate     *validator.Validate
}

func NewPhotoHandler(photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validate:     validator.New(),
	}
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	query := services.PhotoQuery{
		Tag:            c.Query("tag"),
		IncludePrivate: c.Query("includePrivate") == "true",
		IsAdmin:        utils.IsAdmin(c),
	}

	photos, err := h.photoService.ListPhotos(c.Context(), query)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list photos", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, photos)
}

func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	photo, err := h.photoService.GetPhoto(c.Context(), id, utils.IsAdmin(c))
	if err != nil {
		return photoError(c, err, "Failed to get photo")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, photo)
}

func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, "Missing required fields", err)
	}

	photo, err := h.photoService.CreatePhoto(c.Context(), &req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create photo", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, photo)
}

func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	var req dto.UpdatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err)
	}

	photo, err := h.photoService.UpdatePhoto(c.Context(), id, &req)
	if err != nil {
		return photoError(c, err, "Failed to update photo")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, photo)
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	if err := h.photoService.DeletePhoto(c.Context(), id); err != nil {
		return photoError(c, err, "Failed to delete photo")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true})
}

// Download streams the photo bytes: originals for admins, watermarked JPEGs
// for everyone else.
func (h *PhotoHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	result, err := h.photoService.DownloadPhoto(c.Context(), id, utils.IsAdmin(c))
	if err != nil {
		return photoError(c, err, "Failed to download photo")
	}

	c.Set(fiber.HeaderContentType, result.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.Filename))
	// Watermarked and original bytes share a URL, so responses must never
	// be cached.
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(result.Data)
}

// photoError maps service errors onto the HTTP taxonomy. Not-found covers
// both missing photos and private photos viewed anonymously.
func photoError(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, "Photo not found")
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}
