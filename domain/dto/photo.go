package dto

import (
	"time"

	"github.com/google/uuid"
)

// TagResponse is the embedded tag shape inside photo responses.
type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// TagCountResponse is the /api/tags list item: a tag plus the number of
// photos visible to the caller.
type TagCountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Count int64     `json:"count"`
}

// PhotoResponse is the DTO for photo API responses.
type PhotoResponse struct {
	ID              uuid.UUID     `json:"id"`
	Title           *string       `json:"title"`
	Description     *string       `json:"description"`
	Filename        string        `json:"filename"`
	StorageKey      string        `json:"storage_key"`
	StorageURL      string        `json:"storage_url"`
	StorageProvider string        `json:"storage_provider"`
	Width           int           `json:"width,omitempty"`
	Height          int           `json:"height,omitempty"`
	Size            int64         `json:"size,omitempty"`
	MimeType        string        `json:"mime_type,omitempty"`
	IsPublic        bool          `json:"is_public"`
	UploadedBy      *string       `json:"uploaded_by,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Tags            []TagResponse `json:"tags"`
}

// CreatePhotoRequest creates a metadata record from a prior upload.
type CreatePhotoRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Filename    string   `json:"filename" validate:"required"`
	StorageKey  string   `json:"storage_key" validate:"required"`
	StorageURL  string   `json:"storage_url" validate:"required"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Size        int64    `json:"size"`
	MimeType    string   `json:"mime_type"`
	IsPublic    *bool    `json:"is_public"`
	Tags        []string `json:"tags"`
}

// UpdatePhotoRequest applies a partial update; only fields present in the
// request body are touched. A non-nil Tags slice fully replaces the photo's
// tag associations.
type UpdatePhotoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	IsPublic    *bool     `json:"is_public"`
	Tags        *[]string `json:"tags"`
}
