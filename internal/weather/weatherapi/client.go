package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// ForecastDays is the fixed forecast horizon requested from the provider.
const ForecastDays = 3

// Client queries the WeatherAPI.com forecast.json endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a new Client, or an error if the API key is not set.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.WeatherAPIComKey == "" {
		return nil, fmt.Errorf("environment variable WEATHERAPI_COM_API_KEY is not set")
	}
	base := strings.TrimRight(cfg.WeatherAPIBaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("weatherapi: base URL is empty")
	}
	// No client timeout: the caller's context bounds the request.
	return &Client{
		apiKey:     cfg.WeatherAPIComKey,
		baseURL:    base,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}, nil
}

// forecastResponse mirrors the subset of forecast.json we project from.
// Sections are pointers so a payload missing one can be told apart from zero values.
type forecastResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`

	Location *struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`

	Current *struct {
		TempC      float64         `json:"temp_c"`
		FeelsLikeC float64         `json:"feelslike_c"`
		Humidity   int             `json:"humidity"`
		PressureMB float64         `json:"pressure_mb"`
		WindKPH    float64         `json:"wind_kph"`
		Condition  types.Condition `json:"condition"`
		UV         float64         `json:"uv"`
		VisKM      float64         `json:"vis_km"`
	} `json:"current"`

	Forecast *struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64         `json:"maxtemp_c"`
				MinTempC      float64         `json:"mintemp_c"`
				AvgHumidity   float64         `json:"avghumidity"`
				TotalPrecipMM float64         `json:"totalprecip_mm"`
				Condition     types.Condition `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Fetch implements weather.Fetcher. Every call issues exactly one request.
// Failures are *types.TransportError or *types.ProviderError.
func (c *Client) Fetch(ctx context.Context, city string) (types.WeatherRecord, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	q.Set("days", fmt.Sprint(ForecastDays))
	q.Set("aqi", "no")
	q.Set("alerts", "no")
	reqURL := c.baseURL + "/forecast.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("failed to build request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.WeatherRecord{}, &types.TransportError{Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var body forecastResponse
	decodeErr := json.Unmarshal(raw, &body)

	// The provider reports unknown cities with a 4xx status and an error object;
	// its message is surfaced whatever the status.
	if decodeErr == nil && body.Error != nil {
		return types.WeatherRecord{}, &types.ProviderError{Code: body.Error.Code, Message: body.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.WeatherRecord{}, &types.TransportError{
			Err: fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}
	if decodeErr != nil {
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("JSON decode error: %w", decodeErr)}
	}

	return project(body)
}

// project maps the provider payload onto a WeatherRecord. It refuses to
// build a record unless location, current and forecast are all present.
func project(body forecastResponse) (types.WeatherRecord, error) {
	switch {
	case body.Location == nil:
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("malformed response: missing location")}
	case body.Current == nil:
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("malformed response: missing current")}
	case body.Forecast == nil:
		return types.WeatherRecord{}, &types.TransportError{Err: fmt.Errorf("malformed response: missing forecast")}
	}

	days := make([]types.ForecastDay, 0, len(body.Forecast.ForecastDay))
	for _, fd := range body.Forecast.ForecastDay {
		days = append(days, types.ForecastDay{
			Date:          fd.Date,
			MaxTempC:      fd.Day.MaxTempC,
			MinTempC:      fd.Day.MinTempC,
			AvgHumidity:   fd.Day.AvgHumidity,
			TotalPrecipMM: fd.Day.TotalPrecipMM,
			Condition:     fd.Day.Condition,
		})
	}

	cur := body.Current
	return types.WeatherRecord{
		City:         body.Location.Name,
		Country:      body.Location.Country,
		TempC:        cur.TempC,
		FeelsLikeC:   cur.FeelsLikeC,
		Humidity:     cur.Humidity,
		PressureMB:   cur.PressureMB,
		WindKPH:      cur.WindKPH,
		Condition:    cur.Condition,
		UV:           cur.UV,
		VisibilityKM: cur.VisKM,
		Forecast:     days,
	}, nil
}

// redactKey strips the API key from the request URL that *url.Error embeds.
func redactKey(err error, key string) error {
	var uerr *url.Error
	if key == "" || !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: strings.ReplaceAll(uerr.URL, url.QueryEscape(key), "REDACTED"), Err: uerr.Err}
}
