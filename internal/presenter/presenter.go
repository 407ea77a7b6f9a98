// Package presenter turns a WeatherRecord into what people look at:
// the dashboard page and the digest email.
package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// DefaultCity is pre-filled in the dashboard form.
const DefaultCity = "Mumbai"

const (
	trendWidth  = 640
	trendHeight = 240
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page and email templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Metric is a labelled value in the current-conditions panel.
type Metric struct {
	Label string
	Value string
}

// DayCard is one forecast day ready for display.
type DayCard struct {
	Date      string
	Condition string
	IconURL   string
	types.DayDisplay
}

// Dashboard is the view model for the dashboard template.
// Either Error is set or Weather is, never both.
type Dashboard struct {
	Query   string
	Error   string
	Weather *WeatherView
}

// WeatherView is the successful half of a Dashboard.
type WeatherView struct {
	Title     string
	Condition string
	IconURL   string
	Metrics   []Metric
	Days      []DayCard
	Trend     Trend
}

// NewDashboard builds the page model for one lookup. A zero query means
// the form was not submitted yet.
func NewDashboard(query string, rec types.WeatherRecord, err error) Dashboard {
	d := Dashboard{Query: query}
	if query == "" {
		d.Query = DefaultCity
		return d
	}
	if err != nil {
		d.Error = types.ErrorMessage(err)
		return d
	}
	v := NewWeatherView(rec)
	d.Weather = &v
	return d
}

// NewWeatherView lays out a record for rendering.
func NewWeatherView(rec types.WeatherRecord) WeatherView {
	disp := rec.Display()
	v := WeatherView{
		Title:     fmt.Sprintf("Weather in %s, %s", rec.City, rec.Country),
		Condition: rec.Condition.Text,
		IconURL:   rec.Condition.IconURL(),
		Metrics: []Metric{
			{"Temperature", disp.Temperature},
			{"Feels Like", disp.FeelsLike},
			{"Humidity", disp.Humidity},
			{"Pressure", disp.Pressure},
			{"Wind Speed", disp.WindSpeed},
			{"UV Index", disp.UVIndex},
			{"Visibility", disp.Visibility},
		},
		Trend: BuildTrend(rec.Forecast, trendWidth, trendHeight),
	}
	for _, day := range rec.Forecast {
		v.Days = append(v.Days, DayCard{
			Date:       day.Date,
			Condition:  day.Condition.Text,
			IconURL:    day.Condition.IconURL(),
			DayDisplay: day.Display(),
		})
	}
	return v
}

// RenderDigest renders the HTML body of a forecast digest email.
func RenderDigest(tmpl *template.Template, rec types.WeatherRecord) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "digest.html", NewWeatherView(rec)); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
