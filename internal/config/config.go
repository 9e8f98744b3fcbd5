package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrMissingCredential is returned by Validate when no model API key is configured.
var ErrMissingCredential = errors.New("API_KEY environment variable not set; configure GEMINI_API_KEY or API_KEY")

// DatabaseConfig holds PostgreSQL settings for the optional intake ledger.
// The ledger is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// GeminiConfig holds settings for the generative-content endpoint.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	TimeoutSec int // 0 means no client-side timeout
}

// Timeout returns the configured request timeout, zero when unset.
func (c GeminiConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// IntakeConfig holds limits applied to incoming submissions.
type IntakeConfig struct {
	MaxUploadMB int
}

// MaxUploadBytes returns the upload limit in bytes.
func (c IntakeConfig) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

// BodyLimit is the HTTP request body limit: a maximal upload after base64
// expansion plus 1 MiB for the remaining fields.
func (c IntakeConfig) BodyLimit() int {
	return c.MaxUploadBytes()*4/3 + 1024*1024
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	Swagger  bool
	Gemini   GeminiConfig
	Intake   IntakeConfig
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Swagger:  getEnvBool("SWAGGER_ENABLED", true),
		Gemini: GeminiConfig{
			// API_KEY is the historical name; GEMINI_API_KEY wins when both are set.
			APIKey:     getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			TimeoutSec: getEnvInt("GEMINI_TIMEOUT_SEC", 0),
		},
		Intake: IntakeConfig{
			MaxUploadMB: getEnvInt("INTAKE_MAX_UPLOAD_MB", 20),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Validate performs the startup checks. A missing credential is reported as
// ErrMissingCredential so callers can refuse to boot.
func (c *AppConfig) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingCredential
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	if c.Intake.MaxUploadMB <= 0 {
		return fmt.Errorf("INTAKE_MAX_UPLOAD_MB must be positive, got %d", c.Intake.MaxUploadMB)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
