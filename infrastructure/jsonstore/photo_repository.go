package jsonstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

type PhotoRepositoryImpl struct {
	store *Store
}

func NewPhotoRepository(store *Store) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{store: store}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	now := time.Now()
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = now
	}
	photo.UpdatedAt = now

	r.store.doc.Photos = append(r.store.doc.Photos, *photo)
	return r.store.persist()
}

func (r *PhotoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.doc.Photos {
		if r.store.doc.Photos[i].ID == id {
			photo := r.store.doc.Photos[i]
			return &photo, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *PhotoRepositoryImpl) List(ctx context.Context, publicOnly bool) ([]models.Photo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	photos := make([]models.Photo, 0, len(r.store.doc.Photos))
	for _, p := range r.store.doc.Photos {
		if publicOnly && !p.IsPublic {
			continue
		}
		photos = append(photos, p)
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

func (r *PhotoRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.doc.Photos {
		if r.store.doc.Photos[i].ID != id {
			continue
		}
		applyUpdates(&r.store.doc.Photos[i], updates)
		r.store.doc.Photos[i].UpdatedAt = time.Now()
		return r.store.persist()
	}
	return repositories.ErrNotFound
}

// applyUpdates interprets the same column-keyed update map the SQL backend
// takes, so services stay backend-agnostic.
func applyUpdates(photo *models.Photo, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "title":
			photo.Title, _ = value.(*string)
		case "description":
			photo.Description, _ = value.(*string)
		case "is_public":
			if v, ok := value.(bool); ok {
				photo.IsPublic = v
			}
		}
	}
}

func (r *PhotoRepositoryImpl) ReplaceTags(ctx context.Context, id uuid.UUID, tags []models.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.doc.Photos {
		if r.store.doc.Photos[i].ID != id {
			continue
		}
		r.store.doc.Photos[i].Tags = tags
		r.store.doc.Photos[i].UpdatedAt = time.Now()
		return r.store.persist()
	}
	return repositories.ErrNotFound
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.doc.Photos {
		if r.store.doc.Photos[i].ID != id {
			continue
		}
		r.store.doc.Photos = append(r.store.doc.Photos[:i], r.store.doc.Photos[i+1:]...)
		return r.store.persist()
	}
	return repositories.ErrNotFound
}
