package client

import (
	"testing"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

func TestCurrentConditions(t *testing.T) {
	snapshot := &entities.WeatherSnapshot{
		Location: entities.WeatherLocation{Name: "Tokyo"},
		Current:  entities.CurrentWeather{Temperature: 22.5, Humidity: 60, WeatherCode: 2},
	}

	got := CurrentConditions(snapshot, i18n.LanguageEnglish)
	want := "Tokyo: Partly cloudy, 22.5°C (60% humidity)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	ja := CurrentConditions(snapshot, i18n.LanguageJapanese)
	wantJa := "Tokyo: 部分的に曇り, 22.5°C (60% humidity)"
	if ja != wantJa {
		t.Errorf("Expected %q, got %q", wantJa, ja)
	}

	if CurrentConditions(nil, i18n.LanguageEnglish) != "" {
		t.Error("Expected empty string for nil snapshot")
	}
}

func TestForecastLines(t *testing.T) {
	snapshot := &entities.WeatherSnapshot{
		Daily: []entities.DailyForecast{
			{Date: "2026-08-29", WeatherCode: 0, TempMax: 28, TempMin: 19, PrecipitationProbability: 10},
			{Date: "2026-08-30", WeatherCode: 61, TempMax: 25.5, TempMin: 18, PrecipitationProbability: 80},
		},
	}

	lines := ForecastLines(snapshot, i18n.LanguageEnglish)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "2026-08-29: Clear sky, 28°C / 19°C, 10% precipitation" {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if lines[1] != "2026-08-30: Light rain, 25.5°C / 18°C, 80% precipitation" {
		t.Errorf("Unexpected second line %q", lines[1])
	}

	if ForecastLines(nil, i18n.LanguageEnglish) != nil {
		t.Error("Expected nil for nil snapshot")
	}
}
