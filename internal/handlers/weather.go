package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namefreezers/weather-dashboard/internal/weather"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// weatherRequest defines the expected query parameter for GET /api/weather
type weatherRequest struct {
	City string `form:"city" binding:"required"`
}

// WeatherHandler returns a Gin handler for GET /api/weather
func WeatherHandler(fetcher weather.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1) Bind and validate the 'city' query parameter
		var req weatherRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			// 400 Invalid request
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// 2) Fetch current weather and forecast
		rec, err := fetcher.Fetch(c.Request.Context(), req.City)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": types.ErrorMessage(err)})
			return
		}

		// 3) 200 Successful operation
		c.JSON(http.StatusOK, rec)
	}
}

// statusFor maps fetch failures onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrProvider):
		// 404 City not found (or other provider-side rejection)
		return http.StatusNotFound
	case errors.Is(err, types.ErrTransport):
		// 502 the provider could not be reached or answered garbage
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
