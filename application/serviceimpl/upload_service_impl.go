package serviceimpl

import (
	"bytes"
	"context"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"gallery-api/domain/dto"
	"gallery-api/domain/services"
	"gallery-api/infrastructure/storage"
	"gallery-api/pkg/logger"
)

// MaxUploadSize is the upload limit in bytes.
const MaxUploadSize = 20 << 20

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadServiceImpl struct {
	provider storage.Provider
}

func NewUploadService(provider storage.Provider) services.UploadService {
	return &UploadServiceImpl{provider: provider}
}

func (s *UploadServiceImpl) Upload(ctx context.Context, data []byte, filename, mimeType, primaryTag string) (*dto.UploadResponse, error) {
	// Both checks run before the provider is touched; a rejected upload
	// must leave storage untouched.
	if !allowedMimeTypes[mimeType] {
		return nil, services.ErrInvalidFileType
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, services.ErrFileTooLarge
	}

	// Dimensions are informational; an undecodable-but-valid-MIME file
	// still uploads.
	var width, height int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = cfg.Width, cfg.Height
	}

	result, err := s.provider.Upload(ctx, storage.UploadInput{
		Data:       data,
		Filename:   filename,
		MimeType:   mimeType,
		PrimaryTag: primaryTag,
	})
	if err != nil {
		logger.StorageError("upload", "Storage provider rejected upload", err, map[string]interface{}{
			"provider": s.provider.Name(),
			"filename": filename,
		})
		return nil, err
	}

	logger.Storage("upload", "File stored", map[string]interface{}{
		"provider": s.provider.Name(),
		"key":      result.Key,
		"size":     result.Size,
	})

	return &dto.UploadResponse{
		Success:    true,
		StorageKey: result.Key,
		StorageURL: result.URL,
		Filename:   filename,
		Size:       result.Size,
		MimeType:   mimeType,
		Width:      width,
		Height:     height,
	}, nil
}
