package handlers

import (
	"gallery-api/domain/services"
	"gallery-api/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService   services.AuthService
	PhotoService  services.PhotoService
	UploadService services.UploadService
	TagService    services.TagService

	// DriveService is nil when Google Drive credentials are not
	// configured; the drive endpoints then answer with an explanatory
	// error.
	DriveService services.DriveService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth   *AuthHandler
	Photo  *PhotoHandler
	Upload *UploadHandler
	Tag    *TagHandler
	Drive  *DriveHandler
	Health *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, cfg *config.Config, healthCheck func() error) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(services.AuthService, cfg),
		Photo:  NewPhotoHandler(services.PhotoService),
		Upload: NewUploadHandler(services.UploadService),
		Tag:    NewTagHandler(services.TagService),
		Drive:  NewDriveHandler(services.DriveService, cfg),
		Health: NewHealthHandler(healthCheck),
	}
}
