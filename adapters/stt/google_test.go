package stt

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestEncodingForMediaType(t *testing.T) {
	cases := map[string]speechpb.RecognitionConfig_AudioEncoding{
		"audio/webm":             speechpb.RecognitionConfig_WEBM_OPUS,
		"audio/webm;codecs=opus": speechpb.RecognitionConfig_WEBM_OPUS,
		"audio/ogg":              speechpb.RecognitionConfig_OGG_OPUS,
		"audio/wav":              speechpb.RecognitionConfig_LINEAR16,
		"audio/x-wav":            speechpb.RecognitionConfig_LINEAR16,
		"audio/flac":             speechpb.RecognitionConfig_FLAC,
		"audio/mp3":              speechpb.RecognitionConfig_MP3,
		"audio/mpeg":             speechpb.RecognitionConfig_MP3,
	}
	for mediaType, want := range cases {
		got, err := encodingForMediaType(mediaType)
		if err != nil {
			t.Errorf("encodingForMediaType(%q) failed: %v", mediaType, err)
			continue
		}
		if got != want {
			t.Errorf("encodingForMediaType(%q): expected %v, got %v", mediaType, want, got)
		}
	}
}

func TestEncodingForMediaTypeUnsupported(t *testing.T) {
	for _, mediaType := range []string{"audio/aac", "video/mp4", "text/plain", ""} {
		if _, err := encodingForMediaType(mediaType); err == nil {
			t.Errorf("Expected error for %q", mediaType)
		}
	}
}

func TestSupportsMediaTypeCoversUploadWhitelist(t *testing.T) {
	// Every media type the upload whitelist accepts, with the adapter's
	// decodability for each. Container formats the Speech API has no
	// encoding for must answer false so the gate rejects them up front.
	cases := map[string]bool{
		"audio/webm": true,
		"audio/wav":  true,
		"audio/mp3":  true,
		"audio/mpeg": true,
		"audio/ogg":  true,
		"audio/mp4":  false,
		"audio/m4a":  false,
		"audio/aac":  false,
	}

	adapter := &GoogleSpeechToText{}
	for mediaType, want := range cases {
		if got := adapter.SupportsMediaType(mediaType); got != want {
			t.Errorf("SupportsMediaType(%q): expected %v, got %v", mediaType, want, got)
		}
	}
}
