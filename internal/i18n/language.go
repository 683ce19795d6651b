package i18n

// Language is the client-selected conversation language.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// DefaultLanguage is used whenever a request carries an unrecognized value.
const DefaultLanguage = LanguageEnglish

// Parse normalizes a raw language value, falling back to the default for
// anything unrecognized.
func Parse(raw string) Language {
	switch Language(raw) {
	case LanguageEnglish, LanguageJapanese:
		return Language(raw)
	}
	return DefaultLanguage
}

// SpeechRecognitionCode maps a language to the BCP-47 hint sent to the
// transcription provider.
func (l Language) SpeechRecognitionCode() string {
	if l == LanguageJapanese {
		return "ja-JP"
	}
	return "en-US"
}
