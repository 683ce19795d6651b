package client

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/api"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// ChatCaller posts one chat exchange. Satisfied by APIClient.
type ChatCaller interface {
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
}

// Orchestrator drives the chat exchange from the client side. Submit is the
// single command interface: typed input, transcribed input, and canned
// dashboard prompts all go through it.
type Orchestrator struct {
	chat    ChatCaller
	session *ConversationSession
	logger  *zap.Logger

	mu sync.Mutex
	// onCityMention, when set, is invoked with a destination extracted from
	// the submitted text (e.g. to refresh a weather panel).
	onCityMention func(city string)
	busy          bool
	snapshot      *entities.WeatherSnapshot
}

// NewOrchestrator creates an orchestrator bound to a session.
func NewOrchestrator(chat ChatCaller, session *ConversationSession, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{chat: chat, session: session, logger: logger}
}

// OnCityMention registers the destination-mention observer.
func (o *Orchestrator) OnCityMention(fn func(city string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onCityMention = fn
}

// SetWeatherSnapshot updates the snapshot fused into subsequent submissions.
// A nil snapshot clears it.
func (o *Orchestrator) SetWeatherSnapshot(snapshot *entities.WeatherSnapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snapshot = snapshot
}

// Busy reports whether a submission is outstanding. Input is disabled while
// busy; overlapping submissions are refused.
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

// Submit sends one user message. The displayed transcript gets the raw text;
// the transmitted payload is the fused text. On failure a language-matched
// error turn is appended and the user's turn stays in place; there is no
// automatic retry.
func (o *Orchestrator) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return nil
	}
	o.busy = true
	snapshot := o.snapshot
	onCityMention := o.onCityMention
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	}()

	o.session.appendDisplayed(entities.UserTurn(text))

	if city := DetectCity(text); city != "" && onCityMention != nil {
		onCityMention(city)
	}

	lang := o.session.Language()
	response, err := o.chat.Chat(ctx, api.ChatRequest{
		Message:             Fuse(text, snapshot),
		ConversationHistory: o.session.History(),
		Language:            string(lang),
	})
	if err != nil {
		o.logger.Warn("Chat request failed", zap.Error(err))
		o.session.appendDisplayed(entities.AssistantTurn(i18n.ChatErrorMessage(lang)))
		return err
	}

	o.session.appendDisplayed(entities.AssistantTurn(response.Reply))
	o.session.setHistory(response.ConversationHistory)
	return nil
}
