package config

import (
	"strings"
	"testing"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("WEATHERAPI_COM_API_KEY", "")

	cfg, err := Load()
	if err == nil {
		t.Fatalf("Load() expected error, got config %+v", cfg)
	}
	if !strings.Contains(err.Error(), "WEATHERAPI_COM_API_KEY") {
		t.Errorf("Load() error = %v, want mention of WEATHERAPI_COM_API_KEY", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEATHERAPI_COM_API_KEY", "secret")
	t.Setenv("WEATHERAPI_BASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("DIGEST_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.WeatherAPIComKey != "secret" {
		t.Errorf("WeatherAPIComKey = %q, want %q", cfg.WeatherAPIComKey, "secret")
	}
	if cfg.WeatherAPIBaseURL != defaultWeatherAPIBaseURL {
		t.Errorf("WeatherAPIBaseURL = %q, want %q", cfg.WeatherAPIBaseURL, defaultWeatherAPIBaseURL)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.OTLPEndpoint != "" {
		t.Errorf("OTLPEndpoint = %q, want empty", cfg.OTLPEndpoint)
	}
	if cfg.DigestConfigPath != "digest.yaml" {
		t.Errorf("DigestConfigPath = %q, want digest.yaml", cfg.DigestConfigPath)
	}
	if cfg.ServiceName != "weather-dashboard" {
		t.Errorf("ServiceName = %q, want weather-dashboard", cfg.ServiceName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEATHERAPI_COM_API_KEY", "secret")
	t.Setenv("WEATHERAPI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.WeatherAPIBaseURL != "http://localhost:9999/v1" {
		t.Errorf("WeatherAPIBaseURL = %q", cfg.WeatherAPIBaseURL)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
}

func TestLoadSMTP(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASS", "pw")
	t.Setenv("SMTP_FROM", "")

	s, err := LoadSMTP()
	if err != nil {
		t.Fatalf("LoadSMTP() unexpected error: %v", err)
	}
	if s.Port != 587 {
		t.Errorf("Port = %d, want 587", s.Port)
	}
	if s.From != "bot@example.com" {
		t.Errorf("From = %q, want SMTP_USER fallback", s.From)
	}
}

func TestLoadSMTP_InvalidPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASS", "pw")

	if _, err := LoadSMTP(); err == nil {
		t.Fatal("LoadSMTP() expected error for invalid port, got nil")
	}
}
