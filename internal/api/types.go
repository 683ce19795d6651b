package api

import "github.com/Alarksharma15/travelchatbot/domain/entities"

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message             string          `json:"message"`
	ConversationHistory []entities.Turn `json:"conversationHistory"`
	Language            string          `json:"language"`
}

// ChatResponse carries the reply plus the full updated history; the server
// is stateless and returns the whole conversation each call.
type ChatResponse struct {
	Reply               string          `json:"reply"`
	ConversationHistory []entities.Turn `json:"conversationHistory"`
}

// TranscriptionResponse is the body of a successful POST /api/speech/transcribe.
type TranscriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	ErrorType string `json:"errorType,omitempty"`
}
