package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	Storage StorageConfig
	Metrics MetricsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	MaxUploadBytes  int64    `envconfig:"MAX_UPLOAD_BYTES" default:"524288000"`
}

// BackendConfig holds the transcription/summarization backend configuration.
// A zero timeout disables the deadline for that call.
type BackendConfig struct {
	URL            string        `envconfig:"API_URL" default:"http://localhost:8000"`
	ProcessTimeout time.Duration `envconfig:"BACKEND_PROCESS_TIMEOUT" default:"10m"`
	ExportTimeout  time.Duration `envconfig:"BACKEND_EXPORT_TIMEOUT" default:"1m"`
	ChatTimeout    time.Duration `envconfig:"BACKEND_CHAT_TIMEOUT" default:"2m"`
	ReadyTimeout   time.Duration `envconfig:"BACKEND_READY_TIMEOUT" default:"30s"`
	WaitReady      bool          `envconfig:"BACKEND_WAIT_READY" default:"false"`
}

// SessionConfig holds workspace session configuration
type SessionConfig struct {
	Store      string        `envconfig:"SESSION_STORE" default:"memory"` // "memory" or "redis"
	CookieName string        `envconfig:"SESSION_COOKIE" default:"workspace_session"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds upload staging configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"memory"` // "memory" or "minio"
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-workspace"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment only
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Backend,
		&config.Session,
		&config.Redis,
		&config.Storage,
		&config.Metrics,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	config.Backend.URL = strings.TrimRight(config.Backend.URL, "/")

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("API_URL is required")
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_STORE must be memory or redis, got %q", c.Session.Store)
	}
	switch c.Storage.Type {
	case "memory", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be memory or minio, got %q", c.Storage.Type)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
