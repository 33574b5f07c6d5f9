package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Preload("Tags").Where("id = ?", id).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) List(ctx context.Context, publicOnly bool) ([]models.Photo, error) {
	query := r.db.WithContext(ctx).Preload("Tags")
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var photos []models.Photo
	err := query.Order("created_at DESC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Photo{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) ReplaceTags(ctx context.Context, id uuid.UUID, tags []models.Tag) error {
	photo := models.Photo{ID: id}
	return r.db.WithContext(ctx).Model(&photo).Association("Tags").Replace(tags)
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Select(Associations) also clears the photo_tags join rows.
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&models.Photo{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
