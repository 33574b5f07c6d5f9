// Package storage abstracts where uploaded photo files live. The metadata
// layer only keeps the provider name, an opaque key and a display URL, so
// backends are interchangeable per deployment.
package storage

import "context"

// UploadInput carries a validated file into a provider.
type UploadInput struct {
	Data     []byte
	Filename string
	MimeType string

	// PrimaryTag names the Drive folder the file is grouped under. Other
	// providers ignore it.
	PrimaryTag string
}

// UploadResult is what a provider reports back after a successful write.
type UploadResult struct {
	Key  string
	URL  string
	Size int64
}

// Provider is a pluggable storage backend.
type Provider interface {
	// Name identifies the backend ("local", "s3", "googledrive").
	Name() string

	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)

	// Fetch returns the stored bytes for a key.
	Fetch(ctx context.Context, key string) ([]byte, error)

	// Delete removes the stored object. Callers treat failures as
	// best-effort cleanup.
	Delete(ctx context.Context, key string) error
}
