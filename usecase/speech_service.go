package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/domain/repositories"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// captureSampleRate is the sample rate the capture pipeline records at.
const captureSampleRate = 16000

// allowedMediaTypes is the upload whitelist. Anything else is rejected
// before the file is written or any upstream call is made.
var allowedMediaTypes = map[string]bool{
	"audio/webm": true,
	"audio/wav":  true,
	"audio/mp3":  true,
	"audio/mpeg": true,
	"audio/ogg":  true,
	"audio/mp4":  true,
	"audio/m4a":  true,
	"audio/aac":  true,
}

// SpeechService owns the upload/transcribe/cleanup protocol. Each request
// materializes one temporary file that is created on upload, read exactly
// once by the transcription call, and deleted unconditionally before the
// response is produced.
type SpeechService struct {
	stt       repositories.SpeechToText
	uploadDir string
	logger    *zap.Logger
}

// NewSpeechService creates the service and ensures the upload directory
// exists.
func NewSpeechService(stt repositories.SpeechToText, uploadDir string, logger *zap.Logger) (*SpeechService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &SpeechService{stt: stt, uploadDir: uploadDir, logger: logger}, nil
}

// AllowedMediaType reports whether the declared media type is whitelisted.
func (s *SpeechService) AllowedMediaType(mediaType string) bool {
	return allowedMediaTypes[normalizeMediaType(mediaType)]
}

// Transcribe stores the upload under a unique name, runs recognition with a
// language hint, and returns the transcript. The temporary file never
// outlives the call: removal is deferred the moment the file is created and
// runs on success, recognition failure, and every error path in between.
func (s *SpeechService) Transcribe(ctx context.Context, upload io.Reader, mediaType string, lang i18n.Language) (string, error) {
	normalized := normalizeMediaType(mediaType)
	if !allowedMediaTypes[normalized] {
		return "", entities.NewUnsupportedFormatError("Invalid file type. Only audio files are allowed.")
	}
	// Whitelisted formats the recognizer cannot decode are a format problem,
	// not a provider failure. Reject them before anything touches disk.
	if !s.stt.SupportsMediaType(normalized) {
		return "", entities.NewUnsupportedFormatError(fmt.Sprintf("Audio format %s is not supported for transcription.", normalized))
	}

	// The on-disk extension comes from the uploaded file's own media type,
	// never from the client-supplied filename. The name embeds a nanosecond
	// timestamp plus a random suffix so concurrent requests cannot collide.
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixNano(), uuid.NewString(), extensionFor(normalized))
	path := filepath.Join(s.uploadDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp audio file: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Error("Failed to remove temp audio file",
				zap.String("path", path), zap.Error(err))
		}
	}()

	if _, err := io.Copy(file, upload); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	audioData, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read temp audio file: %w", err)
	}

	text, err := s.stt.TranscribeAudio(ctx, audioData, repositories.AudioConfig{
		MediaType:  normalized,
		SampleRate: captureSampleRate,
		Language:   lang.SpeechRecognitionCode(),
	})
	if err != nil {
		return "", entities.NewUpstreamError("Failed to transcribe audio", err)
	}

	s.logger.Info("Transcription completed",
		zap.String("file", name),
		zap.String("language", string(lang)),
		zap.Int("audio_bytes", len(audioData)),
		zap.Int("text_length", len(text)))

	return text, nil
}

// normalizeMediaType strips codec parameters and whitespace, e.g.
// "audio/webm;codecs=opus" becomes "audio/webm".
func normalizeMediaType(mediaType string) string {
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// extensionFor derives the file extension from a normalized media type.
func extensionFor(mediaType string) string {
	if idx := strings.IndexByte(mediaType, '/'); idx >= 0 && idx+1 < len(mediaType) {
		return mediaType[idx+1:]
	}
	return "webm"
}
