package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gallery-api/domain/services"
	"gallery-api/pkg/utils"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List returns every tag with a photo count scoped to what the caller may
// see.
func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tagService.ListTags(c.Context(), utils.IsAdmin(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list tags", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tags)
}
