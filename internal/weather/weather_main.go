package weather

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather/weatherapi"
)

// BuildFetcher constructs the Fetcher used by the binaries:
// 1) the WeatherAPI.com forecast client
// 2) decorated with tracing and structured logging
func BuildFetcher(cfg *config.Config, logger *zap.Logger) (Fetcher, error) {
	client, err := weatherapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("weatherapi client not configured: %w", err)
	}
	logger.Debug("weather provider configured", zap.String("base_url", cfg.WeatherAPIBaseURL))

	return NewInstrumentedFetcher(client, logger), nil
}
