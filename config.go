package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all environment variables for the storefront backend.
type Config struct {
	Port string
	Env  string // "development" or "production"

	MongoURI string
	MongoDB  string
	RedisURL string

	JWTSecret     string
	TokenTTL      time.Duration
	CookieName    string
	AdminUsername string
	AdminPassword string
	// AdminPasswordHash, when set, switches credential checking to bcrypt
	// comparison against this hash instead of the plain password.
	AdminPasswordHash string

	AllowedOrigin string

	// Upload driver: "cloudinary" (default), "s3" or "local".
	UploadDriver string
	UploadFolder string
	UploadDir    string

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	// S3PublicBaseURL overrides the base used to build public object URLs
	// (e.g. a CDN domain). Falls back to the endpoint.
	S3PublicBaseURL string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig loads environment variables into a Config struct and validates them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("APP_ENV", "development"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGODB_DB", "freshmart"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CookieName:        getEnv("SESSION_COOKIE_NAME", "admin_token"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		UploadDriver:      getEnv("UPLOAD_DRIVER", "cloudinary"),
		UploadFolder:      getEnv("UPLOAD_FOLDER", "products"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		S3Bucket:          getEnv("AWS_S3_BUCKET", "freshmart"),
		S3Prefix:          getEnv("AWS_S3_PREFIX", "products/"),
		S3Region:          getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("AWS_S3_ENDPOINT"),
		S3AccessKey:       os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:       os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3PublicBaseURL:   os.Getenv("AWS_S3_PUBLIC_BASE_URL"),
		TokenTTL:          getDuration("SESSION_TTL", 7*24*time.Hour),
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.UploadDriver {
	case "cloudinary", "s3", "local":
	default:
		return nil, fmt.Errorf("unknown UPLOAD_DRIVER %q", cfg.UploadDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
