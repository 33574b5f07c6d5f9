package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gallery-api/application/serviceimpl"
	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/domain/services"
	"gallery-api/infrastructure/googledrive"
	"gallery-api/infrastructure/jsonstore"
	"gallery-api/infrastructure/postgres"
	"gallery-api/infrastructure/storage"
	"gallery-api/infrastructure/watermark"
	"gallery-api/interfaces/api/handlers"
	"gallery-api/pkg/config"
	"gallery-api/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB              *gorm.DB // nil when the jsonfile metadata store is active
	JSONStore       *jsonstore.Store
	DriveClient     *googledrive.DriveClient
	StorageProvider storage.Provider
	Watermark       *watermark.Compositor

	// Repositories
	PhotoRepository      repositories.PhotoRepository
	TagRepository        repositories.TagRepository
	DriveTokenRepository repositories.DriveTokenRepository

	// Services
	AuthService   services.AuthService
	PhotoService  services.PhotoService
	UploadService services.UploadService
	TagService    services.TagService
	DriveService  services.DriveService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initMetadataStore(); err != nil {
		return err
	}

	if err := c.initStorage(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", map[string]interface{}{
		"storage_provider": cfg.Storage.Provider,
		"metadata_store":   cfg.Metadata.Store,
	})
	return nil
}

func (c *Container) initMetadataStore() error {
	switch c.Config.Metadata.Store {
	case "jsonfile":
		store, err := jsonstore.NewStore(c.Config.Metadata.JSONPath)
		if err != nil {
			return err
		}
		c.JSONStore = store
		c.PhotoRepository = jsonstore.NewPhotoRepository(store)
		c.TagRepository = jsonstore.NewTagRepository(store)
		c.DriveTokenRepository = jsonstore.NewDriveTokenRepository(store)
		logger.Startup("metadata_store", "JSON metadata store opened", map[string]interface{}{
			"path": c.Config.Metadata.JSONPath,
		})

	case "postgres":
		dbConfig := postgres.DatabaseConfig{
			Host:     c.Config.Database.Host,
			Port:     c.Config.Database.Port,
			User:     c.Config.Database.User,
			Password: c.Config.Database.Password,
			DBName:   c.Config.Database.DBName,
			SSLMode:  c.Config.Database.SSLMode,
		}

		db, err := postgres.NewDatabase(dbConfig)
		if err != nil {
			return err
		}
		c.DB = db
		logger.Startup("db_connected", "Database connected", nil)

		if err := postgres.Migrate(db); err != nil {
			return err
		}
		logger.Startup("db_migrated", "Database migrated", nil)

		c.PhotoRepository = postgres.NewPhotoRepository(db)
		c.TagRepository = postgres.NewTagRepository(db)
		c.DriveTokenRepository = postgres.NewDriveTokenRepository(db)

	default:
		return fmt.Errorf("unknown metadata store %q", c.Config.Metadata.Store)
	}

	if err := c.TagRepository.Seed(context.Background(), models.SeedTags); err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}

	return nil
}

func (c *Container) initStorage() error {
	// The Drive client doubles as the OAuth handler for the admin
	// connect flow, so build it whenever credentials exist even if
	// another provider stores the files.
	if c.Config.GoogleDrive.ClientID != "" && c.Config.GoogleDrive.ClientSecret != "" {
		c.DriveClient = googledrive.NewDriveClient(c.Config.GoogleDrive)
		logger.Startup("drive_client", "Google Drive client initialized", nil)
	}

	var err error
	switch c.Config.Storage.Provider {
	case "local":
		c.StorageProvider, err = storage.NewLocalProvider(c.Config.Storage)
	case "s3":
		c.StorageProvider, err = storage.NewS3Provider(c.Config.S3)
	case "googledrive":
		if c.DriveClient == nil {
			return fmt.Errorf("storage provider googledrive requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
		}
		c.StorageProvider, err = storage.NewGoogleDriveProvider(c.Config.GoogleDrive, c.DriveClient, c.DriveTokenRepository)
	default:
		return fmt.Errorf("unknown storage provider %q", c.Config.Storage.Provider)
	}
	if err != nil {
		return err
	}

	logger.Startup("storage_initialized", "Storage provider ready", map[string]interface{}{
		"provider": c.StorageProvider.Name(),
	})
	return nil
}

func (c *Container) initServices() error {
	c.Watermark = watermark.New(c.Config.Watermark)

	c.AuthService = serviceimpl.NewAuthService(c.Config.Admin, c.Config.Session.Secret)
	c.UploadService = serviceimpl.NewUploadService(c.StorageProvider)
	c.TagService = serviceimpl.NewTagService(c.TagRepository)
	c.PhotoService = serviceimpl.NewPhotoService(c.PhotoRepository, c.TagRepository, c.StorageProvider, c.Watermark)

	if c.DriveClient != nil {
		c.DriveService = serviceimpl.NewDriveService(c.DriveClient, c.DriveTokenRepository)
	}

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

// GetHandlerServices bundles services for handler construction.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:   c.AuthService,
		PhotoService:  c.PhotoService,
		UploadService: c.UploadService,
		TagService:    c.TagService,
		DriveService:  c.DriveService,
	}
}

// GetConfig returns the loaded configuration.
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// HealthCheck pings the metadata store.
func (c *Container) HealthCheck() func() error {
	return func() error {
		if c.DB == nil {
			return nil
		}
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() error {
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
