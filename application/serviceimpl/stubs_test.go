package serviceimpl_test

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/infrastructure/storage"
)

type stubPhotoRepo struct {
	photos map[uuid.UUID]*models.Photo

	listPublicOnly *bool
	deleted        []uuid.UUID
}

func newStubPhotoRepo(photos ...*models.Photo) *stubPhotoRepo {
	repo := &stubPhotoRepo{photos: map[uuid.UUID]*models.Photo{}}
	for _, p := range photos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.photos[p.ID] = p
	}
	return repo
}

func (r *stubPhotoRepo) Create(ctx context.Context, photo *models.Photo) error {
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	r.photos[photo.ID] = photo
	return nil
}

func (r *stubPhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo, ok := r.photos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *photo
	return &copied, nil
}

func (r *stubPhotoRepo) List(ctx context.Context, publicOnly bool) ([]models.Photo, error) {
	r.listPublicOnly = &publicOnly
	var out []models.Photo
	for _, p := range r.photos {
		if publicOnly && !p.IsPublic {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPhotoRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	photo, ok := r.photos[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if v, ok := updates["is_public"].(bool); ok {
		photo.IsPublic = v
	}
	if v, ok := updates["title"].(*string); ok {
		photo.Title = v
	}
	return nil
}

func (r *stubPhotoRepo) ReplaceTags(ctx context.Context, id uuid.UUID, tags []models.Tag) error {
	photo, ok := r.photos[id]
	if !ok {
		return repositories.ErrNotFound
	}
	photo.Tags = tags
	return nil
}

func (r *stubPhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.photos[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.photos, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubTagRepo struct {
	tags []models.Tag
}

func (r *stubTagRepo) ListWithCounts(ctx context.Context, publicOnly bool) ([]repositories.TagCount, error) {
	var out []repositories.TagCount
	for _, t := range r.tags {
		out = append(out, repositories.TagCount{Tag: t})
	}
	return out, nil
}

func (r *stubTagRepo) ResolveBySlugOrName(ctx context.Context, values []string) ([]models.Tag, error) {
	var out []models.Tag
	for _, v := range values {
		for _, t := range r.tags {
			if t.Slug == v || t.Name == v {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (r *stubTagRepo) Seed(ctx context.Context, names []string) error { return nil }

type stubProvider struct {
	name    string
	files   map[string][]byte
	uploads int

	deleteErr  error
	deleteKeys []string
}

func newStubProvider() *stubProvider {
	return &stubProvider{name: "stub", files: map[string][]byte{}}
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Upload(ctx context.Context, in storage.UploadInput) (*storage.UploadResult, error) {
	p.uploads++
	key := uuid.NewString()
	p.files[key] = in.Data
	return &storage.UploadResult{Key: key, URL: "/uploads/" + key, Size: int64(len(in.Data))}, nil
}

func (p *stubProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, ok := p.files[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return data, nil
}

func (p *stubProvider) Delete(ctx context.Context, key string) error {
	p.deleteKeys = append(p.deleteKeys, key)
	if p.deleteErr != nil {
		return p.deleteErr
	}
	delete(p.files, key)
	return nil
}

type stubWatermarker struct {
	applied int
	err     error
}

func (w *stubWatermarker) Apply(src []byte) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.applied++
	return append([]byte("marked:"), src...), nil
}
