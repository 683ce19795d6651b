package i18n

// weatherCodeKeys maps WMO weather codes to description keys. Codes outside
// this set resolve to the unknown description.
var weatherCodeKeys = map[int]string{
	0:  "clearSky",
	1:  "mainlyClear",
	2:  "partlyCloudy",
	3:  "overcast",
	45: "foggy",
	48: "foggy",
	51: "lightDrizzle",
	53: "drizzle",
	55: "heavyDrizzle",
	61: "lightRain",
	63: "rain",
	65: "heavyRain",
	71: "lightSnow",
	73: "snow",
	75: "heavySnow",
	77: "snowGrains",
	80: "lightShowers",
	81: "showers",
	82: "heavyShowers",
	85: "lightSnowShowers",
	86: "snowShowers",
	95: "thunderstorm",
	96: "thunderstormHail",
	99: "thunderstormHail",
}

var weatherDescriptions = map[Language]map[string]string{
	LanguageEnglish: {
		"clearSky":         "Clear sky",
		"mainlyClear":      "Mainly clear",
		"partlyCloudy":     "Partly cloudy",
		"overcast":         "Overcast",
		"foggy":            "Foggy",
		"lightDrizzle":     "Light drizzle",
		"drizzle":          "Drizzle",
		"heavyDrizzle":     "Heavy drizzle",
		"lightRain":        "Light rain",
		"rain":             "Rain",
		"heavyRain":        "Heavy rain",
		"lightSnow":        "Light snow",
		"snow":             "Snow",
		"heavySnow":        "Heavy snow",
		"snowGrains":       "Snow grains",
		"lightShowers":     "Light showers",
		"showers":          "Showers",
		"heavyShowers":     "Heavy showers",
		"lightSnowShowers": "Light snow showers",
		"snowShowers":      "Snow showers",
		"thunderstorm":     "Thunderstorm",
		"thunderstormHail": "Thunderstorm with hail",
		"unknown":          "Unknown",
	},
	LanguageJapanese: {
		"clearSky":         "快晴",
		"mainlyClear":      "概ね晴れ",
		"partlyCloudy":     "部分的に曇り",
		"overcast":         "曇り",
		"foggy":            "霧",
		"lightDrizzle":     "小雨",
		"drizzle":          "霧雨",
		"heavyDrizzle":     "強い霧雨",
		"lightRain":        "弱い雨",
		"rain":             "雨",
		"heavyRain":        "大雨",
		"lightSnow":        "小雪",
		"snow":             "雪",
		"heavySnow":        "大雪",
		"snowGrains":       "霰",
		"lightShowers":     "弱いにわか雨",
		"showers":          "にわか雨",
		"heavyShowers":     "強いにわか雨",
		"lightSnowShowers": "弱いにわか雪",
		"snowShowers":      "にわか雪",
		"thunderstorm":     "雷雨",
		"thunderstormHail": "雹を伴う雷雨",
		"unknown":          "不明",
	},
}

// WeatherDescription resolves a WMO weather code to a localized description.
func WeatherDescription(code int, lang Language) string {
	key, ok := weatherCodeKeys[code]
	if !ok {
		key = "unknown"
	}
	descriptions, ok := weatherDescriptions[lang]
	if !ok {
		descriptions = weatherDescriptions[DefaultLanguage]
	}
	return descriptions[key]
}
