package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zaptest"

	"github.com/Alarksharma15/travelchatbot/adapters/stt"
	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/usecase"
)

func newSpeechHandler(t *testing.T, mock *stt.MockSpeechToText) *SpeechHandler {
	t.Helper()
	logger := zaptest.NewLogger(t)
	service, err := usecase.NewSpeechService(mock, t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Failed to create speech service: %v", err)
	}
	return NewSpeechHandler(service, logger)
}

func audioUpload(t *testing.T, mediaType, language string, payload []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="audio"; filename="recording.webm"`)
	header.Set("Content-Type", mediaType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to build upload: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("Failed to build upload: %v", err)
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			t.Fatalf("Failed to build upload: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to build upload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/speech/transcribe", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestSpeechHandlerTranscribe(t *testing.T) {
	mock := stt.NewMockSpeechToText(zaptest.NewLogger(t))
	mock.Transcript = "北海道の天気はどうですか"
	handler := newSpeechHandler(t, mock)

	c, rec := audioUpload(t, "audio/webm;codecs=opus", "ja", []byte("audio-bytes"))
	if err := handler.Transcribe(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TranscriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Text != "北海道の天気はどうですか" {
		t.Errorf("Unexpected text %q", resp.Text)
	}
	if resp.Language != "ja" {
		t.Errorf("Expected language ja, got %s", resp.Language)
	}
	if mock.LastConfig.Language != "ja-JP" {
		t.Errorf("Expected ja-JP hint, got %s", mock.LastConfig.Language)
	}
}

func TestSpeechHandlerNoFile(t *testing.T) {
	handler := newSpeechHandler(t, stt.NewMockSpeechToText(zaptest.NewLogger(t)))

	req := httptest.NewRequest(http.MethodPost, "/api/speech/transcribe", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := handler.Transcribe(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "No audio file provided" {
		t.Errorf("Unexpected error %q", resp.Error)
	}
}

func TestSpeechHandlerRejectsNonAudio(t *testing.T) {
	mock := stt.NewMockSpeechToText(zaptest.NewLogger(t))
	handler := newSpeechHandler(t, mock)

	c, rec := audioUpload(t, "text/plain", "en", []byte("not audio"))
	if err := handler.Transcribe(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ErrorType != string(entities.ErrorKindUnsupportedFormat) {
		t.Errorf("Expected UnsupportedFormatError type, got %q", resp.ErrorType)
	}
	if mock.LastAudioBytes != 0 {
		t.Error("Rejected upload should never reach the provider")
	}
}

func TestSpeechHandlerUndecodableFormat(t *testing.T) {
	mock := stt.NewMockSpeechToText(zaptest.NewLogger(t))
	mock.UnsupportedTypes = map[string]bool{"audio/mp4": true}
	handler := newSpeechHandler(t, mock)

	c, rec := audioUpload(t, "audio/mp4", "en", []byte("audio-bytes"))
	if err := handler.Transcribe(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	// Whitelisted but undecodable is still a client-side format problem.
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ErrorType != string(entities.ErrorKindUnsupportedFormat) {
		t.Errorf("Expected UnsupportedFormatError type, got %q", resp.ErrorType)
	}
	if mock.LastAudioBytes != 0 {
		t.Error("Undecodable upload should never reach the provider")
	}
}

func TestSpeechHandlerRecognitionFailure(t *testing.T) {
	mock := stt.NewMockSpeechToText(zaptest.NewLogger(t))
	mock.Err = errors.New("recognizer unavailable")
	handler := newSpeechHandler(t, mock)

	c, rec := audioUpload(t, "audio/mp3", "en", []byte("audio-bytes"))
	if err := handler.Transcribe(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Failed to transcribe audio" {
		t.Errorf("Unexpected error %q", resp.Error)
	}
	if resp.Details != "recognizer unavailable" {
		t.Errorf("Expected the provider detail, got %q", resp.Details)
	}
}
