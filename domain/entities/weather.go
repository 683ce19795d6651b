package entities

// WeatherLocation identifies the resolved place a snapshot describes.
type WeatherLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather is the point-in-time readout of a snapshot.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"windSpeed"`
	WeatherCode   int     `json:"weatherCode"`
	Time          string  `json:"time"`
}

// DailyForecast is one entry of the 7-day outlook.
type DailyForecast struct {
	Date                     string  `json:"date"`
	WeatherCode              int     `json:"weatherCode"`
	TempMax                  float64 `json:"tempMax"`
	TempMin                  float64 `json:"tempMin"`
	Precipitation            float64 `json:"precipitation"`
	PrecipitationProbability float64 `json:"precipitationProbability"`
}

// WeatherUnits echoes the units the upstream provider reported for the
// current readout.
type WeatherUnits struct {
	Temperature   string `json:"temperature"`
	WindSpeed     string `json:"windSpeed"`
	Precipitation string `json:"precipitation"`
}

// WeatherSnapshot is a point-in-time weather readout plus a 7-entry daily
// forecast. It is produced by the weather provider and read-only to the
// rest of the system.
type WeatherSnapshot struct {
	Location WeatherLocation `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Daily    []DailyForecast `json:"daily"`
	Units    WeatherUnits    `json:"units"`
}
