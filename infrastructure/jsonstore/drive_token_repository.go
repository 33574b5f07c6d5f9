package jsonstore

import (
	"context"
	"time"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
)

type DriveTokenRepositoryImpl struct {
	store *Store
}

func NewDriveTokenRepository(store *Store) repositories.DriveTokenRepository {
	return &DriveTokenRepositoryImpl{store: store}
}

func (r *DriveTokenRepositoryImpl) Get(ctx context.Context) (*models.DriveToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.doc.DriveToken == nil {
		return nil, repositories.ErrNotFound
	}
	token := *r.store.doc.DriveToken
	return &token, nil
}

func (r *DriveTokenRepositoryImpl) Save(ctx context.Context, token *models.DriveToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	token.UpdatedAt = time.Now()
	stored := *token
	r.store.doc.DriveToken = &stored
	return r.store.persist()
}

func (r *DriveTokenRepositoryImpl) Delete(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.DriveToken = nil
	return r.store.persist()
}
