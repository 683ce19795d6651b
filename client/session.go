package client

import (
	"sync"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
)

// ConversationSession is the client-owned conversation state: the displayed
// transcript, the wire history as last returned by the server, the active
// language, and the pending-input slot fed by transcription.
//
// Both histories only grow for the lifetime of the session; there is no
// trimming or summarization. The wire history is replaced wholesale by each
// successful server response, never edited locally.
type ConversationSession struct {
	mu        sync.Mutex
	language  i18n.Language
	displayed []entities.Turn
	history   []entities.Turn
	pending   string
}

// NewConversationSession creates a session in the given language.
func NewConversationSession(language i18n.Language) *ConversationSession {
	return &ConversationSession{language: language}
}

// Language returns the active conversation language.
func (s *ConversationSession) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage switches the active language. Already-recorded turns are not
// altered; the new language only re-keys future prompts and hints.
func (s *ConversationSession) SetLanguage(language i18n.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = language
}

// Displayed returns a copy of the displayed transcript.
func (s *ConversationSession) Displayed() []entities.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Turn, len(s.displayed))
	copy(out, s.displayed)
	return out
}

// History returns a copy of the wire history sent with each chat request.
func (s *ConversationSession) History() []entities.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Turn, len(s.history))
	copy(out, s.history)
	return out
}

// SetPendingInput places recognized text into the pending-input slot. The
// text is staged for the user to review and submit; it never enters the
// transcript directly.
func (s *ConversationSession) SetPendingInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = text
}

// TakePendingInput returns and clears the pending-input slot.
func (s *ConversationSession) TakePendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.pending
	s.pending = ""
	return text
}

// PendingInput returns the pending-input slot without clearing it.
func (s *ConversationSession) PendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *ConversationSession) appendDisplayed(turn entities.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayed = append(s.displayed, turn)
}

func (s *ConversationSession) setHistory(history []entities.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = history
}
