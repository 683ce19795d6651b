package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

// MockSpeechToText is a canned-transcript implementation for tests and local
// runs without provider credentials.
type MockSpeechToText struct {
	logger *zap.Logger

	// Transcript is returned on success.
	Transcript string
	// Err is returned as the recognition failure when set.
	Err error
	// LastConfig records the most recent call's config for assertions.
	LastConfig repositories.AudioConfig
	// LastAudioBytes records the payload size of the most recent call.
	LastAudioBytes int
	// UnsupportedTypes lists media types the mock refuses to decode; nil
	// supports everything.
	UnsupportedTypes map[string]bool
}

var _ repositories.SpeechToText = (*MockSpeechToText)(nil)

// NewMockSpeechToText creates a new mock speech-to-text service.
func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{logger: logger, Transcript: "I want to visit Tokyo next spring"}
}

// SupportsMediaType implements repositories.SpeechToText.
func (m *MockSpeechToText) SupportsMediaType(mediaType string) bool {
	return !m.UnsupportedTypes[mediaType]
}

// TranscribeAudio implements repositories.SpeechToText.
func (m *MockSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	m.LastConfig = config
	m.LastAudioBytes = len(audioData)

	m.logger.Info("Processing mock audio payload",
		zap.Int("size", len(audioData)),
		zap.String("media_type", config.MediaType),
		zap.String("language", config.Language))

	if m.Err != nil {
		return "", m.Err
	}
	return m.Transcript, nil
}
