package services

import (
	"context"

	"gallery-api/domain/dto"
)

// UploadService validates incoming files and hands them to the configured
// storage provider.
type UploadService interface {
	// Upload rejects unsupported types and oversized files before any
	// storage write happens. primaryTag selects the Drive folder when the
	// Google Drive provider is active; other providers ignore it.
	Upload(ctx context.Context, data []byte, filename, mimeType, primaryTag string) (*dto.UploadResponse, error)
}
