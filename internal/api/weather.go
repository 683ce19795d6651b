package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/repositories"
	"github.com/Alarksharma15/travelchatbot/usecase"
)

// WeatherHandler serves GET /api/weather.
type WeatherHandler struct {
	weather *usecase.WeatherService
	logger  *zap.Logger
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(weather *usecase.WeatherService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{weather: weather, logger: logger}
}

// Get resolves the queried place (city name, or explicit coordinates) and
// returns its weather snapshot.
func (h *WeatherHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	city := c.QueryParam("city")
	latStr := c.QueryParam("latitude")
	lonStr := c.QueryParam("longitude")

	switch {
	case city != "":
		snapshot, err := h.weather.SnapshotByCity(ctx, city)
		if err != nil {
			if errors.Is(err, repositories.ErrCityNotFound) {
				return c.JSON(http.StatusNotFound, ErrorResponse{
					Error: "City not found",
				})
			}
			h.logger.Error("Weather fetch failed", zap.String("city", city), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to fetch weather data",
				Details: err.Error(),
			})
		}
		return c.JSON(http.StatusOK, snapshot)

	case latStr != "" && lonStr != "":
		latitude, latErr := strconv.ParseFloat(latStr, 64)
		longitude, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Invalid coordinates",
			})
		}
		snapshot, err := h.weather.SnapshotByCoordinates(ctx, latitude, longitude)
		if err != nil {
			h.logger.Error("Weather fetch failed",
				zap.Float64("latitude", latitude),
				zap.Float64("longitude", longitude),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to fetch weather data",
				Details: err.Error(),
			})
		}
		return c.JSON(http.StatusOK, snapshot)

	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Please provide either city name or coordinates",
		})
	}
}
