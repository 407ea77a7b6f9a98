package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/middleware"
	"github.com/namefreezers/weather-dashboard/internal/presenter"
	"github.com/namefreezers/weather-dashboard/internal/weather"
)

// NewRouter wires the dashboard page, the JSON API and the health probe.
func NewRouter(fetcher weather.Fetcher, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery())
	router.SetHTMLTemplate(presenter.Templates())

	router.GET("/", DashboardHandler(fetcher))
	router.GET("/healthz", HealthHandler())

	api := router.Group("/api")
	{
		api.GET("/weather", WeatherHandler(fetcher))
	}
	return router
}
