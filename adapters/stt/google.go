package stt

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

// GoogleSpeechToText implements SpeechToText using Google Cloud
// Speech-to-Text synchronous recognition. Recognition is deterministic;
// the adapter requests only final results.
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates the adapter. Credentials are resolved from
// the ambient Google application default credentials.
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &GoogleSpeechToText{client: client, logger: logger}, nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

// SupportsMediaType reports whether the Speech API has an encoding for the
// media type.
func (g *GoogleSpeechToText) SupportsMediaType(mediaType string) bool {
	_, err := encodingForMediaType(mediaType)
	return err == nil
}

// TranscribeAudio converts a complete audio payload to text.
func (g *GoogleSpeechToText) TranscribeAudio(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("no audio data received")
	}

	encoding, err := encodingForMediaType(config.MediaType)
	if err != nil {
		return "", err
	}

	// Opus is always 48 kHz on the wire regardless of the capture rate.
	sampleRate := int32(config.SampleRate)
	if encoding == speechpb.RecognitionConfig_WEBM_OPUS || encoding == speechpb.RecognitionConfig_OGG_OPUS {
		sampleRate = 48000
	}

	response, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          encoding,
			SampleRateHertz:   sampleRate,
			LanguageCode:      config.Language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	var parts []string
	for _, result := range response.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	transcript := strings.Join(parts, " ")
	if transcript == "" {
		return "", fmt.Errorf("no speech detected in audio")
	}

	g.logger.Info("Transcription completed",
		zap.String("media_type", config.MediaType),
		zap.String("language", config.Language),
		zap.Int("audio_bytes", len(audioData)))

	return transcript, nil
}

// encodingForMediaType converts an uploaded media type to the Google Speech
// API encoding enum.
func encodingForMediaType(mediaType string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	// Strip any codec parameters, e.g. "audio/webm;codecs=opus".
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	switch strings.TrimSpace(mediaType) {
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	case "audio/ogg":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "audio/wav", "audio/x-wav":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "audio/flac":
		return speechpb.RecognitionConfig_FLAC, nil
	case "audio/mp3", "audio/mpeg":
		return speechpb.RecognitionConfig_MP3, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding for media type: %s", mediaType)
	}
}
