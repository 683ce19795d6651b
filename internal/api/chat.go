package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
	"github.com/Alarksharma15/travelchatbot/usecase"
)

// ChatHandler serves POST /api/chat.
type ChatHandler struct {
	chat   *usecase.ChatService
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chat *usecase.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

// Handle binds and validates the request, runs the exchange, and returns
// the reply with the updated conversation history.
func (h *ChatHandler) Handle(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind chat request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
		})
	}

	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Message is required",
		})
	}

	lang := i18n.Parse(req.Language)

	result, err := h.chat.Exchange(c.Request().Context(), req.Message, req.ConversationHistory, lang)
	if err != nil {
		h.logger.Error("Chat exchange failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get response from chatbot",
			Details: providerDetail(err),
		})
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Reply:               result.Reply,
		ConversationHistory: result.History,
	})
}

// providerDetail extracts the upstream provider's message for the error
// envelope, falling back to the full error text.
func providerDetail(err error) string {
	var domainErr *entities.DomainError
	if errors.As(err, &domainErr) && domainErr.Err != nil {
		return domainErr.Err.Error()
	}
	return err.Error()
}
