package weather

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

type stubFetcher struct {
	calls int
	rec   types.WeatherRecord
	err   error
}

func (s *stubFetcher) Fetch(ctx context.Context, city string) (types.WeatherRecord, error) {
	s.calls++
	return s.rec, s.err
}

func TestInstrumentedFetcher_PassesThroughEveryCall(t *testing.T) {
	inner := &stubFetcher{rec: types.WeatherRecord{City: "TestCity", Forecast: make([]types.ForecastDay, 3)}}
	f := NewInstrumentedFetcher(inner, zap.NewNop())

	for i := 0; i < 2; i++ {
		rec, err := f.Fetch(context.Background(), "TestCity")
		if err != nil {
			t.Fatalf("Fetch() unexpected error: %v", err)
		}
		if rec.City != "TestCity" || len(rec.Forecast) != 3 {
			t.Errorf("Fetch() = %+v", rec)
		}
	}
	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2", inner.calls)
	}
}

func TestInstrumentedFetcher_LogsProviderErrorAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := &stubFetcher{
		rec: types.WeatherRecord{City: "should be dropped"},
		err: &types.ProviderError{Code: 1006, Message: "No matching location found."},
	}
	f := NewInstrumentedFetcher(inner, zap.New(core))

	rec, err := f.Fetch(context.Background(), "Nowhere")
	if !errors.Is(err, types.ErrProvider) {
		t.Fatalf("Fetch() error = %v, want ErrProvider", err)
	}
	if rec.City != "" {
		t.Errorf("record must be empty on error, got %+v", rec)
	}

	entries := logs.FilterMessage("weather provider rejected query").All()
	if len(entries) != 1 || entries[0].Level != zapcore.InfoLevel {
		t.Fatalf("expected one info entry, got %+v", logs.All())
	}
	if got := entries[0].ContextMap()["city"]; got != "Nowhere" {
		t.Errorf("logged city = %v, want Nowhere", got)
	}
}

func TestInstrumentedFetcher_LogsTransportErrorAtError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := &stubFetcher{err: &types.TransportError{Err: errors.New("connection refused")}}
	f := NewInstrumentedFetcher(inner, zap.New(core))

	if _, err := f.Fetch(context.Background(), "TestCity"); !errors.Is(err, types.ErrTransport) {
		t.Fatalf("Fetch() error = %v, want ErrTransport", err)
	}
	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 1 {
		t.Errorf("error entries = %d, want 1", n)
	}
}

func TestBuildFetcher_RequiresAPIKey(t *testing.T) {
	if _, err := BuildFetcher(&config.Config{WeatherAPIBaseURL: "http://localhost"}, zap.NewNop()); err == nil {
		t.Fatal("BuildFetcher() expected error without API key, got nil")
	}

	f, err := BuildFetcher(&config.Config{WeatherAPIComKey: "k", WeatherAPIBaseURL: "http://localhost"}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildFetcher() unexpected error: %v", err)
	}
	if _, ok := f.(*InstrumentedFetcher); !ok {
		t.Errorf("BuildFetcher() = %T, want *InstrumentedFetcher", f)
	}
}
