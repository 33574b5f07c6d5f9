package services

import (
	"context"

	"github.com/google/uuid"

	"gallery-api/domain/dto"
)

// PhotoQuery narrows a gallery listing.
type PhotoQuery struct {
	// Tag filters by tag slug or display name. Empty means no filter.
	Tag string

	// IncludePrivate requests private photos too. It is only honoured
	// when IsAdmin is set; otherwise it is silently ignored.
	IncludePrivate bool

	// IsAdmin is whether the caller holds a valid admin session.
	IsAdmin bool
}

// PhotoService covers gallery listing and photo lifecycle.
type PhotoService interface {
	ListPhotos(ctx context.Context, query PhotoQuery) ([]dto.PhotoResponse, error)

	// GetPhoto returns ErrNotFound both for missing photos and for
	// private photos requested without an admin session.
	GetPhoto(ctx context.Context, id uuid.UUID, isAdmin bool) (*dto.PhotoResponse, error)

	CreatePhoto(ctx context.Context, req *dto.CreatePhotoRequest) (*dto.PhotoResponse, error)

	UpdatePhoto(ctx context.Context, id uuid.UUID, req *dto.UpdatePhotoRequest) (*dto.PhotoResponse, error)

	// DeletePhoto removes the metadata record and then attempts to remove
	// the stored file. Storage failures are logged but never surfaced.
	DeletePhoto(ctx context.Context, id uuid.UUID) error

	// DownloadPhoto returns the original bytes for admins and a
	// watermarked rendition for everyone else. Visibility rules match
	// GetPhoto.
	DownloadPhoto(ctx context.Context, id uuid.UUID, isAdmin bool) (*dto.DownloadResult, error)
}
