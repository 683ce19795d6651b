package repositories

import (
	"context"
	"errors"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
)

// ErrCityNotFound reports that geocoding could not resolve the city name.
var ErrCityNotFound = errors.New("city not found")

// Coordinates is a resolved place: a lat/lon pair plus the display name the
// geocoder returned for it.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

// WeatherProvider abstracts the geocoding and forecast upstream.
type WeatherProvider interface {
	// Geocode resolves a city name to coordinates. Returns ErrCityNotFound
	// when the name does not resolve.
	Geocode(ctx context.Context, city string) (Coordinates, error)
	// Forecast fetches the current readout and 7-day outlook for coords.
	Forecast(ctx context.Context, coords Coordinates) (*entities.WeatherSnapshot, error)
}
