package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gallery-api/pkg/config"
)

// S3Provider stores files in any S3-compatible object store (AWS S3, MinIO,
// DigitalOcean Spaces) through the MinIO client.
type S3Provider struct {
	client      *minio.Client
	bucket      string
	endpoint    string
	cdnEndpoint string
	useSSL      bool
}

func NewS3Provider(cfg config.S3Config) (*S3Provider, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_ENDPOINT and S3_BUCKET must be configured")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY must be configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3Provider{
		client:      client,
		bucket:      cfg.Bucket,
		endpoint:    cfg.Endpoint,
		cdnEndpoint: cfg.CDNEndpoint,
		useSSL:      cfg.UseSSL,
	}, nil
}

func (p *S3Provider) Name() string {
	return "s3"
}

func (p *S3Provider) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	key := "photos/" + uuid.New().String() + fileExtension(in.Filename, in.MimeType)

	_, err := p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(in.Data), int64(len(in.Data)), minio.PutObjectOptions{
		ContentType:  in.MimeType,
		UserMetadata: map[string]string{"x-amz-acl": "public-read"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &UploadResult{
		Key:  key,
		URL:  p.objectURL(key),
		Size: int64(len(in.Data)),
	}, nil
}

func (p *S3Provider) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := p.client.GetObject(ctx, p.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}

func (p *S3Provider) Delete(ctx context.Context, key string) error {
	if err := p.client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (p *S3Provider) objectURL(key string) string {
	if p.cdnEndpoint != "" {
		return fmt.Sprintf("%s/%s", p.cdnEndpoint, key)
	}
	scheme := "http"
	if p.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, p.endpoint, p.bucket, key)
}
