package entities

// Role identifies the sender of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is a single message in a conversation. A turn is immutable once
// created and its position in a history is significant.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserTurn builds a user-role turn.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// AssistantTurn builds an assistant-role turn.
func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// AppendExchange returns history extended with one user/assistant pair.
// The input slice is never mutated; the result is a fresh slice so that
// callers holding the prior history keep an unchanged view.
func AppendExchange(history []Turn, userContent, assistantContent string) []Turn {
	out := make([]Turn, 0, len(history)+2)
	out = append(out, history...)
	out = append(out, UserTurn(userContent), AssistantTurn(assistantContent))
	return out
}

// SanitizeHistory drops system-role turns from caller-supplied history.
// The system prompt is always selected server-side; letting a caller smuggle
// its own system turns through the history would bypass that. Ordering of
// the remaining turns is preserved.
func SanitizeHistory(history []Turn) []Turn {
	out := make([]Turn, 0, len(history))
	for _, turn := range history {
		if turn.Role == RoleSystem {
			continue
		}
		out = append(out, turn)
	}
	return out
}
