package serviceimpl

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gallery-api/domain/dto"
	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/domain/services"
	"gallery-api/infrastructure/storage"
	"gallery-api/pkg/logger"
)

// Watermarker renders the public-download overlay.
type Watermarker interface {
	Apply(src []byte) ([]byte, error)
}

type PhotoServiceImpl struct {
	photoRepo repositories.PhotoRepository
	tagRepo   repositories.TagRepository
	provider  storage.Provider
	marker    Watermarker
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	tagRepo repositories.TagRepository,
	provider storage.Provider,
	marker Watermarker,
) services.PhotoService {
	return &PhotoServiceImpl{
		photoRepo: photoRepo,
		tagRepo:   tagRepo,
		provider:  provider,
		marker:    marker,
	}
}

func (s *PhotoServiceImpl) ListPhotos(ctx context.Context, query services.PhotoQuery) ([]dto.PhotoResponse, error) {
	// includePrivate from a caller without a session is dropped, not
	// rejected; anonymous listings simply stay public.
	publicOnly := !(query.IsAdmin && query.IncludePrivate)

	photos, err := s.photoRepo.List(ctx, publicOnly)
	if err != nil {
		return nil, err
	}

	if query.Tag != "" {
		photos = filterByTag(photos, query.Tag)
	}

	return dto.ToPhotoResponses(photos), nil
}

// filterByTag keeps photos carrying a tag whose slug or display name equals
// the filter value.
func filterByTag(photos []models.Photo, value string) []models.Photo {
	filtered := photos[:0]
	for _, photo := range photos {
		for _, tag := range photo.Tags {
			if tag.Slug == value || tag.Name == value {
				filtered = append(filtered, photo)
				break
			}
		}
	}
	return filtered
}

func (s *PhotoServiceImpl) GetPhoto(ctx context.Context, id uuid.UUID, isAdmin bool) (*dto.PhotoResponse, error) {
	photo, err := s.visiblePhoto(ctx, id, isAdmin)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPhotoResponse(*photo)
	return &resp, nil
}

// visiblePhoto loads a photo and applies the visibility rule: a private
// photo requested without a session reports not-found, never forbidden, so
// outsiders cannot probe which ids exist.
func (s *PhotoServiceImpl) visiblePhoto(ctx context.Context, id uuid.UUID, isAdmin bool) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	if !photo.IsPublic && !isAdmin {
		return nil, services.ErrNotFound
	}
	return photo, nil
}

func (s *PhotoServiceImpl) CreatePhoto(ctx context.Context, req *dto.CreatePhotoRequest) (*dto.PhotoResponse, error) {
	tags, err := s.tagRepo.ResolveBySlugOrName(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		Title:           req.Title,
		Description:     req.Description,
		Filename:        req.Filename,
		MimeType:        req.MimeType,
		Size:            req.Size,
		Width:           req.Width,
		Height:          req.Height,
		StorageKey:      req.StorageKey,
		StorageURL:      req.StorageURL,
		StorageProvider: s.provider.Name(),
		Tags:            tags,
	}
	if req.IsPublic != nil {
		photo.IsPublic = *req.IsPublic
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}

	resp := dto.ToPhotoResponse(*photo)
	return &resp, nil
}

func (s *PhotoServiceImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, req *dto.UpdatePhotoRequest) (*dto.PhotoResponse, error) {
	if _, err := s.photoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = req.Description
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.photoRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	if req.Tags != nil {
		tags, err := s.tagRepo.ResolveBySlugOrName(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.photoRepo.ReplaceTags(ctx, id, tags); err != nil {
			return nil, err
		}
	}

	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPhotoResponse(*photo)
	return &resp, nil
}

func (s *PhotoServiceImpl) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrNotFound
		}
		return err
	}

	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return err
	}

	// The metadata row is authoritative. An orphaned file is only wasted
	// space, so storage cleanup failures are logged and swallowed.
	if err := s.provider.Delete(ctx, photo.StorageKey); err != nil {
		logger.StorageError("delete", "Failed to remove stored file", err, map[string]interface{}{
			"provider": s.provider.Name(),
			"key":      photo.StorageKey,
		})
	}

	return nil
}

func (s *PhotoServiceImpl) DownloadPhoto(ctx context.Context, id uuid.UUID, isAdmin bool) (*dto.DownloadResult, error) {
	photo, err := s.visiblePhoto(ctx, id, isAdmin)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.Fetch(ctx, photo.StorageKey)
	if err != nil {
		return nil, err
	}

	if isAdmin {
		return &dto.DownloadResult{
			Data:     data,
			MimeType: photo.MimeType,
			Filename: photo.Filename,
		}, nil
	}

	marked, err := s.marker.Apply(data)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadResult{
		Data:        marked,
		MimeType:    "image/jpeg",
		Filename:    jpegFilename(photo.Filename),
		Watermarked: true,
	}, nil
}

// jpegFilename swaps the extension for .jpg; watermarked downloads are
// always re-encoded as JPEG.
func jpegFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}
