package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from environment
// variables (after an optional .env load in main).
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"5000"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DBPath is the SQLite database file; ":memory:" is accepted for tests.
	DBPath string `env:"DB_PATH" envDefault:"./school.db"`
	// SeedDemoData controls whether the startup seeder inserts the demo
	// notifications/students alongside the admin account.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-key"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	AWSRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSEndpointURL string `env:"AWS_ENDPOINT_URL"` // empty in prod, LocalStack URL in dev
	AWSAccessKeyID string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey   string `env:"AWS_SECRET_ACCESS_KEY"`
	S3BucketName   string `env:"S3_BUCKET_NAME" envDefault:"school-uploads"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
