package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment‐driven settings shared by the API server and the scheduler.
type Config struct {
	// Weather provider
	WeatherAPIComKey  string
	WeatherAPIBaseURL string

	// API
	Port string

	// Tracing
	OTLPEndpoint string
	ServiceName  string

	// Scheduler
	DigestConfigPath string
}

// SMTP holds the mail settings needed only by the digest scheduler.
type SMTP struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

const defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// Load reads and validates the environment, applying defaults where appropriate.
// A .env file in the working directory is loaded first if present; variables
// already set in the process environment win.
func Load() (*Config, error) {
	loadDotEnv()

	// The API key has no fallback value: a missing key is a configuration error.
	apiKey := os.Getenv("WEATHERAPI_COM_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("WEATHERAPI_COM_API_KEY is required")
	}

	return &Config{
		WeatherAPIComKey:  apiKey,
		WeatherAPIBaseURL: getEnv("WEATHERAPI_BASE_URL", defaultWeatherAPIBaseURL),

		Port: getEnv("PORT", "8080"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "weather-dashboard"),

		DigestConfigPath: getEnv("DIGEST_CONFIG", "digest.yaml"),
	}, nil
}

// LoadSMTP reads the SMTP settings. All but SMTP_FROM are required.
func LoadSMTP() (*SMTP, error) {
	loadDotEnv()

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}
	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		return nil, fmt.Errorf("SMTP_PORT is required")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
	}
	user := os.Getenv("SMTP_USER")
	if user == "" {
		return nil, fmt.Errorf("SMTP_USER is required")
	}
	pass := os.Getenv("SMTP_PASS")
	if pass == "" {
		return nil, fmt.Errorf("SMTP_PASS is required")
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		// default to the authenticated user
		from = user
	}

	return &SMTP{Host: host, Port: port, User: user, Pass: pass, From: from}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDotEnv() {
	// Missing .env is the normal case in containers.
	_ = godotenv.Load()
}
