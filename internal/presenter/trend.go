package presenter

import (
	"strconv"
	"strings"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

const trendPadding = 20.0

// TrendLabel is a date tick under the chart.
type TrendLabel struct {
	X    string
	Text string
}

// Trend is the max/min temperature line chart, pre-scaled to SVG coordinates.
type Trend struct {
	Width, Height float64
	MaxPoints     string // "x,y x,y ..." for <polyline points>
	MinPoints     string
	Labels        []TrendLabel
	High, Low     string // axis extremes, formatted in °C
}

// Empty reports whether there is nothing to plot.
func (t Trend) Empty() bool { return len(t.Labels) == 0 }

// BuildTrend plots the daily max and min temperatures inside a width×height box.
// Both series share one vertical scale; a flat series sits at mid-height.
func BuildTrend(days []types.ForecastDay, width, height float64) Trend {
	t := Trend{Width: width, Height: height}
	if len(days) == 0 {
		return t
	}

	lo, hi := days[0].MinTempC, days[0].MaxTempC
	for _, d := range days {
		lo = min(lo, d.MinTempC, d.MaxTempC)
		hi = max(hi, d.MinTempC, d.MaxTempC)
	}
	t.Low = types.FormatNumber(lo) + "°C"
	t.High = types.FormatNumber(hi) + "°C"

	x := func(i int) float64 {
		if len(days) == 1 {
			return width / 2
		}
		return trendPadding + float64(i)*(width-2*trendPadding)/float64(len(days)-1)
	}
	y := func(v float64) float64 {
		if hi == lo {
			return height / 2
		}
		return trendPadding + (hi-v)/(hi-lo)*(height-2*trendPadding)
	}

	maxPts := make([]string, 0, len(days))
	minPts := make([]string, 0, len(days))
	for i, d := range days {
		xi := coord(x(i))
		maxPts = append(maxPts, xi+","+coord(y(d.MaxTempC)))
		minPts = append(minPts, xi+","+coord(y(d.MinTempC)))
		t.Labels = append(t.Labels, TrendLabel{X: xi, Text: d.Date})
	}
	t.MaxPoints = strings.Join(maxPts, " ")
	t.MinPoints = strings.Join(minPts, " ")
	return t
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
