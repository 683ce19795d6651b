package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

const (
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"
	defaultForecastBaseURL  = "https://api.open-meteo.com/v1"
	defaultTimeout          = 10 * time.Second

	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max"
	forecastDays  = 7
)

// OpenMeteoConfig holds configuration for the Open-Meteo adapter.
// All fields are optional; zero values use the public API endpoints.
type OpenMeteoConfig struct {
	GeocodingBaseURL string
	ForecastBaseURL  string
	Timeout          time.Duration
}

// OpenMeteo implements WeatherProvider against the Open-Meteo geocoding and
// forecast APIs. Neither endpoint requires authentication.
type OpenMeteo struct {
	geocodingBaseURL string
	forecastBaseURL  string
	httpClient       *http.Client
	logger           *zap.Logger
}

var _ repositories.WeatherProvider = (*OpenMeteo)(nil)

// NewOpenMeteo creates a new Open-Meteo weather provider.
func NewOpenMeteo(config OpenMeteoConfig, logger *zap.Logger) *OpenMeteo {
	geocodingBaseURL := config.GeocodingBaseURL
	if geocodingBaseURL == "" {
		geocodingBaseURL = defaultGeocodingBaseURL
	}
	forecastBaseURL := config.ForecastBaseURL
	if forecastBaseURL == "" {
		forecastBaseURL = defaultForecastBaseURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &OpenMeteo{
		geocodingBaseURL: geocodingBaseURL,
		forecastBaseURL:  forecastBaseURL,
		httpClient:       &http.Client{Timeout: timeout},
		logger:           logger,
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		FeelsLike   float64 `json:"apparent_temperature"`
		Precip      float64 `json:"precipitation"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		Time        string  `json:"time"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature string `json:"temperature_2m"`
		WindSpeed   string `json:"wind_speed_10m"`
		Precip      string `json:"precipitation"`
	} `json:"current_units"`
	Daily struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		PrecipSum     []float64 `json:"precipitation_sum"`
		PrecipProbMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Geocode resolves a city name to coordinates using the geocoding API.
func (o *OpenMeteo) Geocode(ctx context.Context, city string) (repositories.Coordinates, error) {
	params := url.Values{
		"name":     {city},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	var decoded geocodingResponse
	if err := o.getJSON(ctx, o.geocodingBaseURL+"/search", params, &decoded); err != nil {
		return repositories.Coordinates{}, fmt.Errorf("geocoding request failed: %w", err)
	}

	if len(decoded.Results) == 0 {
		return repositories.Coordinates{}, repositories.ErrCityNotFound
	}

	result := decoded.Results[0]
	o.logger.Info("City resolved",
		zap.String("query", city),
		zap.String("name", result.Name),
		zap.String("country", result.Country))

	return repositories.Coordinates{
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Name:      result.Name,
		Country:   result.Country,
	}, nil
}

// Forecast fetches the current readout and 7-day outlook for coords.
func (o *OpenMeteo) Forecast(ctx context.Context, coords repositories.Coordinates) (*entities.WeatherSnapshot, error) {
	params := url.Values{
		"latitude":      {strconv.FormatFloat(coords.Latitude, 'f', -1, 64)},
		"longitude":     {strconv.FormatFloat(coords.Longitude, 'f', -1, 64)},
		"current":       {currentFields},
		"daily":         {dailyFields},
		"timezone":      {"auto"},
		"forecast_days": {strconv.Itoa(forecastDays)},
	}

	var decoded forecastResponse
	if err := o.getJSON(ctx, o.forecastBaseURL+"/forecast", params, &decoded); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	daily := make([]entities.DailyForecast, 0, len(decoded.Daily.Time))
	for i, date := range decoded.Daily.Time {
		daily = append(daily, entities.DailyForecast{
			Date:                     date,
			WeatherCode:              at(decoded.Daily.WeatherCode, i),
			TempMax:                  at(decoded.Daily.TempMax, i),
			TempMin:                  at(decoded.Daily.TempMin, i),
			Precipitation:            at(decoded.Daily.PrecipSum, i),
			PrecipitationProbability: at(decoded.Daily.PrecipProbMax, i),
		})
	}

	return &entities.WeatherSnapshot{
		Location: entities.WeatherLocation{
			Name:      coords.Name,
			Country:   coords.Country,
			Latitude:  coords.Latitude,
			Longitude: coords.Longitude,
		},
		Current: entities.CurrentWeather{
			Temperature:   decoded.Current.Temperature,
			FeelsLike:     decoded.Current.FeelsLike,
			Humidity:      decoded.Current.Humidity,
			Precipitation: decoded.Current.Precip,
			WindSpeed:     decoded.Current.WindSpeed,
			WeatherCode:   decoded.Current.WeatherCode,
			Time:          decoded.Current.Time,
		},
		Daily: daily,
		Units: entities.WeatherUnits{
			Temperature:   decoded.CurrentUnits.Temperature,
			WindSpeed:     decoded.CurrentUnits.WindSpeed,
			Precipitation: decoded.CurrentUnits.Precip,
		},
	}, nil
}

func (o *OpenMeteo) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// at guards against ragged upstream arrays; Open-Meteo keys daily series by
// the shared time axis.
func at[T int | float64](values []T, i int) T {
	if i < len(values) {
		return values[i]
	}
	var zero T
	return zero
}
