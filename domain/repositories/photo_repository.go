package repositories

import (
	"context"

	"github.com/google/uuid"

	"gallery-api/domain/models"
)

type PhotoRepository interface {
	// Create persists a new photo row together with its tag associations.
	Create(ctx context.Context, photo *models.Photo) error

	// GetByID returns a photo with its tags preloaded, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)

	// List returns photos newest first, tags preloaded. When publicOnly is
	// set, private photos are excluded.
	List(ctx context.Context, publicOnly bool) ([]models.Photo, error)

	// Update applies the given column updates to a photo. ErrNotFound when
	// the row does not exist.
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error

	// ReplaceTags swaps a photo's tag association set for the given tags
	// (delete-all-then-insert semantics).
	ReplaceTags(ctx context.Context, id uuid.UUID, tags []models.Tag) error

	// Delete removes the photo row and its join rows. ErrNotFound when the
	// row does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
