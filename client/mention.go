package client

import (
	"regexp"
	"strings"
)

// cityPatterns are applied in order; the first rule whose capture satisfies
// the length bounds wins. The trigger words match case-insensitively but
// the destination itself must start with a capital letter. Capitalized
// common words can still false-positive, and only the first mention in a
// message is returned.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?i:in|to|visit|weather in|going to|traveling to|trip to))\s+([A-Z][a-zA-Z\s]+?)(?:\s|,|\.|\?|$)`),
	regexp.MustCompile(`([A-Z][a-zA-Z\s]{2,}?)\s+(?:(?i:weather|forecast))`),
}

const (
	minCityLength = 2
	maxCityLength = 30
)

// DetectCity extracts a destination mention from free text. Returns the
// empty string when no rule produces a candidate within the length bounds.
func DetectCity(text string) string {
	for _, pattern := range cityPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		city := strings.TrimSpace(match[1])
		if len(city) > minCityLength && len(city) < maxCityLength {
			return city
		}
	}
	return ""
}
