package repositories

import (
	"context"

	"gallery-api/domain/models"
)

// DriveTokenRepository stores the single Google Drive OAuth credential set.
// Keeping tokens behind a repository (instead of process-global state) makes
// refresh behaviour injectable and testable.
type DriveTokenRepository interface {
	// Get returns the stored token, or ErrNotFound when Drive has never
	// been connected.
	Get(ctx context.Context) (*models.DriveToken, error)

	// Save inserts or replaces the stored token.
	Save(ctx context.Context, token *models.DriveToken) error

	// Delete removes the stored token.
	Delete(ctx context.Context) error
}
