package i18n

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		expected Language
	}{
		{"en", LanguageEnglish},
		{"ja", LanguageJapanese},
		{"", LanguageEnglish},
		{"fr", LanguageEnglish},
		{"EN", LanguageEnglish},
	}

	for _, tt := range tests {
		if got := Parse(tt.raw); got != tt.expected {
			t.Errorf("Parse(%q): expected %s, got %s", tt.raw, tt.expected, got)
		}
	}
}

func TestSystemPromptPerLanguage(t *testing.T) {
	en := SystemPrompt(LanguageEnglish)
	ja := SystemPrompt(LanguageJapanese)

	if en == ja {
		t.Error("Expected distinct prompts per language")
	}
	if !strings.Contains(en, "travel assistant") {
		t.Errorf("English prompt missing role statement: %q", en[:40])
	}
	if !strings.Contains(ja, "旅行アシスタント") {
		t.Error("Japanese prompt missing role statement")
	}

	// Unrecognized keys fall back to the default language's prompt.
	if SystemPrompt(Language("de")) != en {
		t.Error("Expected fallback to default prompt for unrecognized language")
	}
}

func TestApology(t *testing.T) {
	if Apology(LanguageEnglish) == "" || Apology(LanguageJapanese) == "" {
		t.Error("Expected non-empty apology for both languages")
	}
	if Apology(LanguageEnglish) == Apology(LanguageJapanese) {
		t.Error("Expected language-specific apologies")
	}
	if Apology(Language("xx")) != Apology(DefaultLanguage) {
		t.Error("Expected fallback apology for unrecognized language")
	}
}

func TestSpeechRecognitionCode(t *testing.T) {
	if code := LanguageEnglish.SpeechRecognitionCode(); code != "en-US" {
		t.Errorf("Expected en-US, got %s", code)
	}
	if code := LanguageJapanese.SpeechRecognitionCode(); code != "ja-JP" {
		t.Errorf("Expected ja-JP, got %s", code)
	}
}

// documentedWeatherCodes is the WMO code set the forecast endpoint serves.
var documentedWeatherCodes = []int{
	0, 1, 2, 3, 45, 48, 51, 53, 55, 61, 63, 65,
	71, 73, 75, 77, 80, 81, 82, 85, 86, 95, 96, 99,
}

func TestWeatherDescriptionDocumentedCodes(t *testing.T) {
	for _, lang := range []Language{LanguageEnglish, LanguageJapanese} {
		unknown := WeatherDescription(-1, lang)
		for _, code := range documentedWeatherCodes {
			description := WeatherDescription(code, lang)
			if description == "" {
				t.Errorf("Code %d has no %s description", code, lang)
			}
			if description == unknown {
				t.Errorf("Code %d resolves to the unknown description in %s", code, lang)
			}
		}
	}
}

func TestWeatherDescriptionUnknownCode(t *testing.T) {
	if got := WeatherDescription(42, LanguageEnglish); got != "Unknown" {
		t.Errorf("Expected Unknown for undocumented code, got %q", got)
	}
	if got := WeatherDescription(42, Language("xx")); got != "Unknown" {
		t.Errorf("Expected default-language Unknown for unrecognized language, got %q", got)
	}
}
