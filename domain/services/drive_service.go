package services

import (
	"context"

	"gallery-api/domain/dto"
)

// DriveService manages the Google Drive OAuth connection.
type DriveService interface {
	// AuthURL builds the consent-screen URL for the given CSRF state.
	AuthURL(state string) string

	// HandleCallback exchanges the authorization code and persists the
	// resulting token set.
	HandleCallback(ctx context.Context, code string) error

	// Status reports whether Drive is connected and when the stored
	// access token expires.
	Status(ctx context.Context) (*dto.DriveStatusResponse, error)

	// Disconnect drops the stored token.
	Disconnect(ctx context.Context) error
}
