package client

import (
	"fmt"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// CurrentConditions renders the localized one-line readout for a snapshot's
// current weather. Returns "" for a nil snapshot.
func CurrentConditions(snapshot *entities.WeatherSnapshot, lang i18n.Language) string {
	if snapshot == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s, %v°C (%v%% humidity)",
		snapshot.Location.Name,
		i18n.WeatherDescription(snapshot.Current.WeatherCode, lang),
		snapshot.Current.Temperature,
		snapshot.Current.Humidity)
}

// ForecastLines renders one localized line per daily entry of the outlook.
// Returns nil for a nil snapshot.
func ForecastLines(snapshot *entities.WeatherSnapshot, lang i18n.Language) []string {
	if snapshot == nil {
		return nil
	}
	lines := make([]string, 0, len(snapshot.Daily))
	for _, day := range snapshot.Daily {
		lines = append(lines, fmt.Sprintf("%s: %s, %v°C / %v°C, %v%% precipitation",
			day.Date,
			i18n.WeatherDescription(day.WeatherCode, lang),
			day.TempMax,
			day.TempMin,
			day.PrecipitationProbability))
	}
	return lines
}
