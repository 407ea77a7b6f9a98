package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/namefreezers/weather-dashboard/internal/presenter"
	"github.com/namefreezers/weather-dashboard/internal/weather"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// DashboardHandler handles GET / and renders the dashboard page.
// The router must have presenter.Templates() installed via SetHTMLTemplate.
func DashboardHandler(fetcher weather.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			// form not submitted yet: no lookup
			c.HTML(http.StatusOK, "dashboard.html", presenter.NewDashboard("", types.WeatherRecord{}, nil))
			return
		}

		rec, err := fetcher.Fetch(c.Request.Context(), city)
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}
		c.HTML(status, "dashboard.html", presenter.NewDashboard(city, rec, err))
	}
}

// HealthHandler handles GET /healthz
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
