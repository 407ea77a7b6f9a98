package types

import (
	"strconv"
	"strings"
)

// Condition is a provider weather condition: a short description and an icon reference.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// IconURL resolves the protocol-relative icon fragment ("//cdn.weatherapi.com/...")
// into an absolute URL.
func (c Condition) IconURL() string {
	if strings.HasPrefix(c.Icon, "//") {
		return "https:" + c.Icon
	}
	return c.Icon
}

// ForecastDay is one day of the forecast sequence.
type ForecastDay struct {
	Date          string    `json:"date"`
	MaxTempC      float64   `json:"max_temp_c"`
	MinTempC      float64   `json:"min_temp_c"`
	AvgHumidity   float64   `json:"avg_humidity"`
	TotalPrecipMM float64   `json:"total_precip_mm"`
	Condition     Condition `json:"condition"`
}

// WeatherRecord is current conditions plus the forecast for one location.
// It only ever comes out of a successful fetch.
type WeatherRecord struct {
	City         string        `json:"city"`
	Country      string        `json:"country"`
	TempC        float64       `json:"temp_c"`
	FeelsLikeC   float64       `json:"feels_like_c"`
	Humidity     int           `json:"humidity"`
	PressureMB   float64       `json:"pressure_mb"`
	WindKPH      float64       `json:"wind_kph"`
	Condition    Condition     `json:"condition"`
	UV           float64       `json:"uv"`
	VisibilityKM float64       `json:"visibility_km"`
	Forecast     []ForecastDay `json:"forecast"`
}

// Display holds the record's values formatted with their units.
type Display struct {
	Temperature string
	FeelsLike   string
	Humidity    string
	Pressure    string
	WindSpeed   string
	UVIndex     string
	Visibility  string
}

// Display formats the current conditions for presentation.
func (r WeatherRecord) Display() Display {
	return Display{
		Temperature: FormatNumber(r.TempC) + "°C",
		FeelsLike:   FormatNumber(r.FeelsLikeC) + "°C",
		Humidity:    strconv.Itoa(r.Humidity) + "%",
		Pressure:    FormatNumber(r.PressureMB) + " hPa",
		WindSpeed:   FormatNumber(r.WindKPH) + " kph",
		UVIndex:     FormatNumber(r.UV),
		Visibility:  FormatNumber(r.VisibilityKM) + " km",
	}
}

// DayDisplay holds one forecast day formatted with units.
type DayDisplay struct {
	MaxTemp     string
	MinTemp     string
	AvgHumidity string
	TotalPrecip string
}

func (d ForecastDay) Display() DayDisplay {
	return DayDisplay{
		MaxTemp:     FormatNumber(d.MaxTempC) + "°C",
		MinTemp:     FormatNumber(d.MinTempC) + "°C",
		AvgHumidity: FormatNumber(d.AvgHumidity) + "%",
		TotalPrecip: FormatNumber(d.TotalPrecipMM) + " mm",
	}
}

// FormatNumber prints v in its shortest exact form, keeping at least one
// decimal place so that 20 renders as "20.0".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
