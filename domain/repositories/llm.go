package repositories

import (
	"context"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
)

// CompletionRequest is the fully assembled input for one model call: the
// server-selected system prompt, the caller-supplied history, and the new
// user message.
type CompletionRequest struct {
	SystemPrompt string
	History      []entities.Turn
	Message      string
}

// LargeLanguageModel abstracts the hosted chat completion provider.
type LargeLanguageModel interface {
	// Complete returns the model's reply for the assembled request. An empty
	// reply with a nil error means the model produced no content; the caller
	// decides the fallback.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
