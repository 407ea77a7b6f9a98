package weather

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// Fetcher returns current conditions plus forecast for a city, or an error.
// Exactly one of the two results is meaningful.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (types.WeatherRecord, error)
}

// InstrumentedFetcher decorates another Fetcher with a trace span and a log
// line per call. It never short-circuits the inner Fetcher.
type InstrumentedFetcher struct {
	inner  Fetcher
	logger *zap.Logger
}

// NewInstrumentedFetcher wraps inner (e.g. a weatherapi.Client).
func NewInstrumentedFetcher(inner Fetcher, logger *zap.Logger) *InstrumentedFetcher {
	return &InstrumentedFetcher{inner: inner, logger: logger}
}

func (f *InstrumentedFetcher) Fetch(ctx context.Context, city string) (types.WeatherRecord, error) {
	ctx, span := otel.Tracer("weather").Start(ctx, "weather.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("city", city))

	start := time.Now()
	rec, err := f.inner.Fetch(ctx, city)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		kind := "transport"
		if errors.Is(err, types.ErrProvider) {
			kind = "provider"
			f.logger.Info("weather provider rejected query",
				zap.String("city", city),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		} else {
			f.logger.Error("weather fetch failed",
				zap.String("city", city),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		}
		span.SetAttributes(attribute.String("error.kind", kind))
		span.SetStatus(codes.Error, kind+" error")
		return types.WeatherRecord{}, err
	}

	span.SetAttributes(
		attribute.String("location", rec.City),
		attribute.Int("forecast.days", len(rec.Forecast)),
	)
	span.SetStatus(codes.Ok, "")
	f.logger.Info("weather fetched",
		zap.String("city", city),
		zap.String("location", rec.City),
		zap.Float64("temp_c", rec.TempC),
		zap.Int("forecast_days", len(rec.Forecast)),
		zap.Duration("elapsed", elapsed),
	)
	return rec, nil
}
