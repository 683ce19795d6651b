package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

const (
	defaultModel = "gemini-2.0-flash"

	// Fixed sampling configuration. Completions are deterministic in shape:
	// non-streaming, bounded output.
	samplingTemperature = 0.7
	samplingTopP        = 1.0
	maxOutputTokens     = 1024
)

// GeminiConfig holds configuration for the Gemini adapter.
type GeminiConfig struct {
	APIKey string // Required
	Model  string // Optional, defaults to gemini-2.0-flash
}

// ValidateGeminiConfig validates the GeminiConfig.
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("gemini API key is required")
	}
	return nil
}

// GeminiLLM implements the LargeLanguageModel interface using Google's
// Gemini API.
type GeminiLLM struct {
	client *genai.Client
	logger *zap.Logger
	model  string
}

var _ repositories.LargeLanguageModel = (*GeminiLLM)(nil)

// NewGeminiLLM creates a new Gemini LLM instance.
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	return &GeminiLLM{
		client: client,
		logger: logger,
		model:  model,
	}, nil
}

// Complete sends the assembled request to Gemini and returns the reply text.
// Upstream failures are returned to the caller untouched; there is no retry
// at this tier.
func (g *GeminiLLM) Complete(ctx context.Context, req repositories.CompletionRequest) (string, error) {
	// Gemini has no system role in content lists; the system prompt leads the
	// contents as a user turn.
	contents := make([]*genai.Content, 0, len(req.History)+2)
	contents = append(contents, genai.NewContentFromText(req.SystemPrompt, genai.RoleUser))
	for _, turn := range req.History {
		contents = append(contents, genai.NewContentFromText(turn.Content, geminiRole(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(samplingTemperature)),
		TopP:            genai.Ptr(float32(samplingTopP)),
		MaxOutputTokens: int32(maxOutputTokens),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		g.logger.Error("Gemini completion failed", zap.Error(err))
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		g.logger.Warn("No content generated")
		return "", nil
	}

	var reply string
	for _, part := range response.Candidates[0].Content.Parts {
		reply += part.Text
	}

	g.logger.Info("Completion generated",
		zap.Int("history_length", len(req.History)),
		zap.Int("reply_length", len(reply)))

	return reply, nil
}

// geminiRole maps conversation roles onto Gemini's two content roles.
func geminiRole(role entities.Role) genai.Role {
	if role == entities.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}
