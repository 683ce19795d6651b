package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/domain/repositories"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// ChatService runs the stateless request/response exchange with the language
// model. Conversation history is entirely caller-supplied; the service holds
// no per-session state.
type ChatService struct {
	llm    repositories.LargeLanguageModel
	logger *zap.Logger
}

// NewChatService creates a new chat service.
func NewChatService(llm repositories.LargeLanguageModel, logger *zap.Logger) *ChatService {
	return &ChatService{llm: llm, logger: logger}
}

// ChatResult carries the reply plus the updated history contract: the
// sanitized inbound history extended with the new user/assistant pair.
type ChatResult struct {
	Reply   string
	History []entities.Turn
}

// Exchange assembles the prompt for one exchange and invokes the model.
// System turns smuggled into the inbound history are stripped before
// assembly; the system prompt is always selected here, keyed by language.
// A model that succeeds but produces no content yields a language-matched
// apology rather than a failure.
func (s *ChatService) Exchange(ctx context.Context, message string, history []entities.Turn, lang i18n.Language) (*ChatResult, error) {
	sanitized := entities.SanitizeHistory(history)
	if dropped := len(history) - len(sanitized); dropped > 0 {
		s.logger.Warn("Dropped system turns from caller-supplied history",
			zap.Int("dropped", dropped))
	}

	reply, err := s.llm.Complete(ctx, repositories.CompletionRequest{
		SystemPrompt: i18n.SystemPrompt(lang),
		History:      sanitized,
		Message:      message,
	})
	if err != nil {
		return nil, entities.NewUpstreamError("Failed to get response from chatbot", err)
	}
	if reply == "" {
		reply = i18n.Apology(lang)
	}

	s.logger.Info("Exchange completed",
		zap.String("language", string(lang)),
		zap.Int("history_length", len(sanitized)),
		zap.Int("reply_length", len(reply)))

	return &ChatResult{
		Reply:   reply,
		History: entities.AppendExchange(sanitized, message, reply),
	}, nil
}
