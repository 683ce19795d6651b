package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultPort             = "8080"
	defaultGeminiModel      = "gemini-2.0-flash"
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"
	defaultForecastBaseURL  = "https://api.open-meteo.com/v1"
)

// Config holds the server configuration, read once from the environment at
// startup and threaded through construction. Nothing reads the environment
// after Load returns.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// GeminiAPIKey authenticates the chat completion provider.
	GeminiAPIKey string
	// GeminiModel is the completion model identifier.
	GeminiModel string
	// UploadDir is the shared temporary directory for in-flight audio files.
	UploadDir string
	// GeocodingBaseURL and ForecastBaseURL point at the Open-Meteo APIs.
	// Overridable for tests.
	GeocodingBaseURL string
	ForecastBaseURL  string
}

// Load reads .env if present, then builds the configuration from the
// environment with defaults applied.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", defaultPort),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", defaultGeminiModel),
		UploadDir:        getEnv("UPLOAD_DIR", filepath.Join(os.TempDir(), "uploads")),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", defaultGeocodingBaseURL),
		ForecastBaseURL:  getEnv("FORECAST_BASE_URL", defaultForecastBaseURL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("upload directory must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
