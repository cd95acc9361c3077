package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting of the service.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" required:"true"`
	ServerPort   int    `envconfig:"SERVER_PORT" default:"8080"`

	AdminUsername     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	MatchMaxScore      int      `envconfig:"MATCH_MAX_SCORE" default:"10"`

	R2 R2 `envconfig:"R2"`
}

// R2 holds the Cloudflare R2 settings used for team logos. All fields empty
// disables logo uploads.
type R2 struct {
	AccountID       string `envconfig:"ACCOUNT_ID"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"BUCKET_NAME"`
	PublicBaseURL   string `envconfig:"PUBLIC_BASE_URL"`
}

func (r R2) Enabled() bool {
	return r.AccountID != "" || r.AccessKeyID != "" || r.SecretAccessKey != "" || r.BucketName != "" || r.PublicBaseURL != ""
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}
	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}
	if cfg.MatchMaxScore <= 0 {
		return nil, fmt.Errorf("MATCH_MAX_SCORE must be positive, got %d", cfg.MatchMaxScore)
	}

	return &cfg, nil
}
