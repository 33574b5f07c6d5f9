package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

// driveTokenRowID pins the token to a single row; the app holds one Drive
// connection at a time.
const driveTokenRowID = 1

type DriveTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewDriveTokenRepository(db *gorm.DB) repositories.DriveTokenRepository {
	return &DriveTokenRepositoryImpl{db: db}
}

func (r *DriveTokenRepositoryImpl) Get(ctx context.Context) (*models.DriveToken, error) {
	var token models.DriveToken
	err := r.db.WithContext(ctx).Where("id = ?", driveTokenRowID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *DriveTokenRepositoryImpl) Save(ctx context.Context, token *models.DriveToken) error {
	token.ID = driveTokenRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(token).Error
}

func (r *DriveTokenRepositoryImpl) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("id = ?", driveTokenRowID).Delete(&models.DriveToken{}).Error
}
