package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID   uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name string    `gorm:"not null"`
	Slug string    `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time

	// Relations
	Photos []Photo `gorm:"many2many:photo_tags;"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// SeedTags is the predefined tag set created at migration time.
var SeedTags = []string{
	"Nature",
	"Urban",
	"Portrait",
	"Landscape",
	"Abstract",
	"Architecture",
	"Street",
	"Wildlife",
	"Travel",
	"Black & White",
	"Colour",
	"Minimalist",
	"Documentary",
	"Fine Art",
	"Experimental",
}
