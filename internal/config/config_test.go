package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("GEOCODING_BASE_URL", "")
	t.Setenv("FORECAST_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("Expected default model, got %s", cfg.GeminiModel)
	}
	if cfg.UploadDir == "" {
		t.Error("Expected a default upload directory")
	}
	if cfg.GeocodingBaseURL != "https://geocoding-api.open-meteo.com/v1" {
		t.Errorf("Unexpected geocoding URL %s", cfg.GeocodingBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("UPLOAD_DIR", "/tmp/custom-uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("Expected overridden model, got %s", cfg.GeminiModel)
	}
	if cfg.UploadDir != "/tmp/custom-uploads" {
		t.Errorf("Expected overridden upload dir, got %s", cfg.UploadDir)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{GeminiAPIKey: "key", Port: "8080", UploadDir: "/tmp/uploads"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	missingKey := valid
	missingKey.GeminiAPIKey = ""
	if err := missingKey.Validate(); err == nil {
		t.Error("Expected error for missing API key")
	}

	missingPort := valid
	missingPort.Port = ""
	if err := missingPort.Validate(); err == nil {
		t.Error("Expected error for missing port")
	}
}
