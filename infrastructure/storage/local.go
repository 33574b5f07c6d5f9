package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gallery-api/pkg/config"
)

// LocalProvider writes files to a directory served as static content.
type LocalProvider struct {
	uploadDir  string
	publicPath string
}

func NewLocalProvider(cfg config.StorageConfig) (*LocalProvider, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{
		uploadDir:  cfg.UploadDir,
		publicPath: strings.TrimSuffix(cfg.PublicDir, "/"),
	}, nil
}

func (p *LocalProvider) Name() string {
	return "local"
}

func (p *LocalProvider) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	key := uuid.New().String() + fileExtension(in.Filename, in.MimeType)

	path := filepath.Join(p.uploadDir, key)
	if err := os.WriteFile(path, in.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		Key:  key,
		URL:  p.publicPath + "/" + key,
		Size: int64(len(in.Data)),
	}, nil
}

func (p *LocalProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(p.uploadDir, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	// filepath.Base stops keys like "../.env" from escaping the upload dir.
	if err := os.Remove(filepath.Join(p.uploadDir, filepath.Base(key))); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// fileExtension prefers the original filename's extension and falls back to
// one derived from the MIME type.
func fileExtension(filename, mimeType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
