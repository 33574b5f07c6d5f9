package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Metadata    MetadataConfig
	Session     SessionConfig
	Admin       AdminConfig
	Storage     StorageConfig
	S3          S3Config
	GoogleDrive GoogleDriveConfig
	Watermark   WatermarkConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Env     string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MetadataConfig selects the metadata store backend.
// "postgres" is the default; "jsonfile" keeps photo records in a flat JSON file.
type MetadataConfig struct {
	Store    string
	JSONPath string
}

type SessionConfig struct {
	Secret     string
	CookieName string
}

type AdminConfig struct {
	Secret     string // plain shared secret, compared in constant time
	SecretHash string // optional bcrypt hash, takes precedence over Secret
}

// StorageConfig selects the active storage provider: local, s3 or googledrive.
type StorageConfig struct {
	Provider  string
	UploadDir string
	PublicDir string
}

type S3Config struct {
	Endpoint    string
	Region      string
	AccessKey   string
	SecretKey   string
	Bucket      string
	CDNEndpoint string
	UseSSL      bool
}

type GoogleDriveConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RootFolder   string
}

type WatermarkConfig struct {
	Text    string
	Caption string
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load()

	useSSL, _ := strconv.ParseBool(getEnv("S3_USE_SSL", "true"))

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Gallery API"),
			Port:    getEnv("APP_PORT", "3000"),
			Env:     getEnv("APP_ENV", "development"),
			BaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "gallery"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Metadata: MetadataConfig{
			Store:    getEnv("METADATA_STORE", "postgres"),
			JSONPath: getEnv("METADATA_JSON_PATH", "data/photos.json"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "change-me-in-production"),
			CookieName: getEnv("SESSION_COOKIE", "gallery_session"),
		},
		Admin: AdminConfig{
			Secret:     getEnv("ADMIN_SECRET", ""),
			SecretHash: getEnv("ADMIN_SECRET_HASH", ""),
		},
		Storage: StorageConfig{
			Provider:  getEnv("STORAGE_PROVIDER", "local"),
			UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),
			PublicDir: getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
		},
		S3: S3Config{
			Endpoint:    getEnv("S3_ENDPOINT", ""),
			Region:      getEnv("S3_REGION", "us-east-1"),
			AccessKey:   getEnv("S3_ACCESS_KEY", ""),
			SecretKey:   getEnv("S3_SECRET_KEY", ""),
			Bucket:      getEnv("S3_BUCKET", ""),
			CDNEndpoint: getEnv("S3_CDN_ENDPOINT", ""),
			UseSSL:      useSSL,
		},
		GoogleDrive: GoogleDriveConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/api/auth/google/callback"),
			RootFolder:   getEnv("GOOGLE_DRIVE_ROOT_FOLDER", "photos"),
		},
		Watermark: WatermarkConfig{
			Text:    getEnv("WATERMARK_TEXT", "PHOTO GALLERY"),
			Caption: getEnv("WATERMARK_CAPTION", "© Photo Gallery"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
