package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

// WeatherService resolves a place and shapes the provider's forecast into
// the snapshot schema served to clients.
type WeatherService struct {
	provider repositories.WeatherProvider
	logger   *zap.Logger
}

// NewWeatherService creates a new weather service.
func NewWeatherService(provider repositories.WeatherProvider, logger *zap.Logger) *WeatherService {
	return &WeatherService{provider: provider, logger: logger}
}

// SnapshotByCity geocodes the city name, then fetches the forecast.
// Returns repositories.ErrCityNotFound when the name does not resolve.
func (s *WeatherService) SnapshotByCity(ctx context.Context, city string) (*entities.WeatherSnapshot, error) {
	coords, err := s.provider.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.provider.Forecast(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	return snapshot, nil
}

// SnapshotByCoordinates fetches the forecast for an explicit lat/lon pair.
func (s *WeatherService) SnapshotByCoordinates(ctx context.Context, latitude, longitude float64) (*entities.WeatherSnapshot, error) {
	coords := repositories.Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
		Name:      "Selected Location",
	}
	snapshot, err := s.provider.Forecast(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	return snapshot, nil
}
