package client

import "testing"

func TestDetectCity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"traveling to", "I am traveling to Paris next week", "Paris"},
		{"no mention", "nice weather today", ""},
		{"trip to", "Planning a trip to Barcelona.", "Barcelona"},
		{"weather suffix", "What's the Tokyo weather like?", "Tokyo"},
		{"forecast suffix", "London forecast please", "London"},
		{"lowercase destination", "i want to go to paris", ""},
		{"empty", "", ""},
		// Known limitation: the capture stops at the first word boundary, so
		// multi-word names yield only their first word.
		{"multi-word", "We are going to New York, any tips?", "New"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCity(tt.text); got != tt.expected {
				t.Errorf("DetectCity(%q): expected %q, got %q", tt.text, tt.expected, got)
			}
		})
	}
}

func TestDetectCityLengthBounds(t *testing.T) {
	// Two characters is below the minimum.
	if got := DetectCity("I am traveling to Ba tomorrow"); got == "Ba" {
		t.Errorf("Expected short candidate rejected, got %q", got)
	}
	// Thirty or more characters is above the maximum.
	long := "I am traveling to Averyveryveryveryverylongcityname tomorrow"
	if got := DetectCity(long); got != "" {
		t.Errorf("Expected long candidate rejected, got %q", got)
	}
}

func TestDetectCityFirstMentionWins(t *testing.T) {
	got := DetectCity("Should I go to Rome or visit Madrid?")
	if got != "Rome" {
		t.Errorf("Expected first mention Rome, got %q", got)
	}
}
