package services

import (
	"context"

	"gallery-api/domain/dto"
)

// TagService lists tags with visibility-aware photo counts.
type TagService interface {
	// ListTags counts only public photos for anonymous callers and all
	// photos for admins.
	ListTags(ctx context.Context, isAdmin bool) ([]dto.TagCountResponse, error)
}
