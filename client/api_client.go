package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/api"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

const defaultRequestTimeout = 60 * time.Second

// fileExtensions maps a negotiated capture mime type to the filename
// extension hint sent with the upload.
var fileExtensions = map[string]string{
	"audio/webm": "webm",
	"audio/mp4":  "mp4",
	"audio/mpeg": "mp3",
	"audio/ogg":  "ogg",
	"audio/wav":  "wav",
}

// APIClient talks to the server's chat, transcription, and weather
// endpoints. Calls are awaited independently; the client issues no retries.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func NewAPIClient(baseURL string, logger *zap.Logger) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
}

// Chat posts one exchange and returns the reply with the updated history.
func (c *APIClient) Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var decoded api.ChatResponse
	if err := c.do(httpReq, &decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}

// Transcribe uploads an assembled audio payload as a multipart file field
// named "audio" plus the active language, and returns the recognized text.
// A zero-length payload is rejected before any network call is made.
func (c *APIClient) Transcribe(ctx context.Context, payload []byte, mimeType string, lang i18n.Language) (string, error) {
	if len(payload) == 0 {
		return "", entities.NewUnsupportedFormatError("Audio recording is empty. Please try recording again.")
	}

	ext, ok := fileExtensions[mimeType]
	if !ok {
		ext = "webm"
	}
	filename := "recording." + ext

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audio"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.WriteField("language", string(lang)); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/speech/transcribe", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var decoded api.TranscriptionResponse
	if err := c.do(httpReq, &decoded); err != nil {
		return "", err
	}

	c.logger.Info("Transcription received",
		zap.String("filename", filename),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("text_length", len(decoded.Text)))

	return decoded.Text, nil
}

// Weather fetches the snapshot for a city.
func (c *APIClient) Weather(ctx context.Context, city string) (*entities.WeatherSnapshot, error) {
	params := url.Values{"city": {city}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	var decoded entities.WeatherSnapshot
	if err := c.do(httpReq, &decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			if apiErr.Details != "" {
				return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Details)
			}
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
