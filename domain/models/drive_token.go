package models

import "time"

// DriveToken holds the single Google Drive OAuth credential set for the
// gallery. One row, updated in place; the refresh token survives access
// token rotation.
type DriveToken struct {
	ID           uint   `gorm:"primaryKey"`
	AccessToken  string `gorm:"not null"`
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	UpdatedAt    time.Time
}

func (DriveToken) TableName() string {
	return "drive_tokens"
}
