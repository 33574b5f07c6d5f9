package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"gallery-api/domain/services"
	"gallery-api/pkg/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart file under "file" plus an optional "tag" form
// value naming the Drive folder the file belongs in.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "No file provided", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read uploaded file", err)
	}

	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	result, err := h.uploadService.Upload(c.Context(), data, fileHeader.Filename, mimeType, c.FormValue("tag"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFileType):
			return utils.BadRequestResponse(c, "Invalid file type. Only JPEG, PNG, GIF and WebP are allowed", nil)
		case errors.Is(err, services.ErrFileTooLarge):
			return utils.BadRequestResponse(c, "File too large. Maximum size is 20MB", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
