package repositories

import "context"

// AudioConfig describes an uploaded audio payload for recognition.
type AudioConfig struct {
	// MediaType is the payload's declared media type, e.g. "audio/webm".
	MediaType string
	// SampleRate in hertz. Uploads from the capture pipeline are 16 kHz mono.
	SampleRate int
	// Language is the BCP-47 recognition hint, e.g. "en-US" or "ja-JP".
	Language string
}

// SpeechToText abstracts the transcription provider.
type SpeechToText interface {
	// TranscribeAudio converts a complete audio payload to text using
	// deterministic decoding.
	TranscribeAudio(ctx context.Context, audioData []byte, config AudioConfig) (string, error)
	// SupportsMediaType reports whether the provider can decode the media
	// type. Uploads failing this check are rejected before any provider call.
	SupportsMediaType(mediaType string) bool
}
