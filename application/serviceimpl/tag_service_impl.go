package serviceimpl

import (
	"context"

	"gallery-api/domain/dto"
	"gallery-api/domain/repositories"
	"gallery-api/domain/services"
)

type TagServiceImpl struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) services.TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

func (s *TagServiceImpl) ListTags(ctx context.Context, isAdmin bool) ([]dto.TagCountResponse, error) {
	counts, err := s.tagRepo.ListWithCounts(ctx, !isAdmin)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TagCountResponse, 0, len(counts))
	for _, tc := range counts {
		out = append(out, dto.ToTagCountResponse(tc))
	}
	return out, nil
}
