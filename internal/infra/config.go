package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers understood by cmd/api.
const (
	StorageDriverFS  = "fs"
	StorageDriverGCS = "gcs"
	StorageDriverS3  = "s3"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	GeminiAPIKey      string
	GeminiImageModel  string
	GenerationTimeout time.Duration
	FetchTimeout      time.Duration

	StorageDriver        string
	StoragePath          string
	StoragePublicBaseURL string
	StorageTimeout       time.Duration
	GCSCredentialsFile   string
	S3Endpoint           string
	S3Region             string
	S3AccessKey          string
	S3SecretKey          string
	FurnitureBucket      string
	RoomBucket           string

	ModelInputMaxDimension int
	MigrateOnStart         bool
	GeoIPDBPath            string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	port := getEnv("PORT", "8080")
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),

		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiImageModel:  getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),
		GenerationTimeout: time.Second * time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 60)),
		FetchTimeout:      time.Second * time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 10)),

		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverFS)),
		StoragePath:        getEnv("STORAGE_PATH", "./storage"),
		StorageTimeout:     time.Second * time.Duration(getEnvInt("STORAGE_TIMEOUT_SECONDS", 30)),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
		S3Endpoint:         strings.TrimRight(os.Getenv("S3_ENDPOINT"), "/"),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:        os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:        os.Getenv("S3_SECRET_KEY"),
		FurnitureBucket:    getEnv("FURNITURE_BUCKET", "furniture-images"),
		RoomBucket:         getEnv("ROOM_BUCKET", "room-images"),

		ModelInputMaxDimension: getEnvInt("MODEL_INPUT_MAX_DIMENSION", 1536),
		MigrateOnStart:         getEnvBool("MIGRATE_ON_START", false),
		GeoIPDBPath:            os.Getenv("GEOIP_DB_PATH"),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	switch cfg.StorageDriver {
	case StorageDriverFS, StorageDriverGCS:
	case StorageDriverS3:
		if cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("S3_ENDPOINT is required for the s3 storage driver")
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	cfg.StoragePublicBaseURL = strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE_URL", defaultPublicBaseURL(cfg)), "/")

	return cfg, nil
}

func defaultPublicBaseURL(cfg *Config) string {
	switch cfg.StorageDriver {
	case StorageDriverGCS:
		return "https://storage.googleapis.com"
	case StorageDriverS3:
		return cfg.S3Endpoint
	default:
		return fmt.Sprintf("http://localhost:%s/static", cfg.Port)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
