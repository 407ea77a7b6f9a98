package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		20:     "20.0",
		20.5:   "20.5",
		21.25:  "21.25",
		-3:     "-3.0",
		0:      "0.0",
		1012.0: "1012.0",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWeatherRecord_Display(t *testing.T) {
	r := WeatherRecord{
		TempC:        20.0,
		FeelsLikeC:   19.4,
		Humidity:     70,
		PressureMB:   1012,
		WindKPH:      11.2,
		UV:           5,
		VisibilityKM: 10,
	}
	d := r.Display()

	want := Display{
		Temperature: "20.0°C",
		FeelsLike:   "19.4°C",
		Humidity:    "70%",
		Pressure:    "1012.0 hPa",
		WindSpeed:   "11.2 kph",
		UVIndex:     "5.0",
		Visibility:  "10.0 km",
	}
	if d != want {
		t.Errorf("Display() = %+v, want %+v", d, want)
	}
}

func TestForecastDay_Display(t *testing.T) {
	d := ForecastDay{MaxTempC: 25, MinTempC: 15, AvgHumidity: 61, TotalPrecipMM: 1.2}.Display()
	if d.MaxTemp != "25.0°C" || d.MinTemp != "15.0°C" || d.AvgHumidity != "61.0%" || d.TotalPrecip != "1.2 mm" {
		t.Errorf("ForecastDay.Display() = %+v", d)
	}
}

func TestCondition_IconURL(t *testing.T) {
	c := Condition{Icon: "//cdn.weatherapi.com/weather/64x64/day/113.png"}
	if got := c.IconURL(); got != "https://cdn.weatherapi.com/weather/64x64/day/113.png" {
		t.Errorf("IconURL() = %q", got)
	}
	abs := Condition{Icon: "https://example.com/a.png"}
	if got := abs.IconURL(); got != abs.Icon {
		t.Errorf("IconURL() on absolute = %q, want unchanged", got)
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = &TransportError{Err: cause}
	wrapped := fmt.Errorf("fetch: %w", err)

	if !errors.Is(wrapped, ErrTransport) {
		t.Error("TransportError should match ErrTransport")
	}
	if errors.Is(wrapped, ErrProvider) {
		t.Error("TransportError should not match ErrProvider")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
	if got := ErrorMessage(wrapped); got != "API request failed: connection refused" {
		t.Errorf("ErrorMessage(transport) = %q", got)
	}

	perr := fmt.Errorf("fetch: %w", &ProviderError{Code: 1006, Message: "No matching location found."})
	if !errors.Is(perr, ErrProvider) {
		t.Error("ProviderError should match ErrProvider")
	}
	if got := ErrorMessage(perr); got != "No matching location found." {
		t.Errorf("ErrorMessage(provider) = %q", got)
	}

	if got := ErrorMessage(nil); got != "" {
		t.Errorf("ErrorMessage(nil) = %q, want empty", got)
	}
}
