package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Photo struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       *string
	Description *string

	// File info
	Filename string `gorm:"not null"`
	MimeType string
	Size     int64
	Width    int
	Height   int

	// Storage locator (backend-specific: file path, object key or Drive file id)
	StorageKey      string `gorm:"uniqueIndex;not null"`
	StorageURL      string `gorm:"not null"`
	StorageProvider string `gorm:"index"`

	// Visibility: private photos are hidden from unauthenticated callers
	IsPublic bool `gorm:"default:false;index"`

	UploadedBy *string

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Relations
	Tags []Tag `gorm:"many2many:photo_tags;"`
}

func (Photo) TableName() string {
	return "photos"
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
