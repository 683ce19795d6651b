package llm

import (
	"context"

	"github.com/Alarksharma15/travelchatbot/domain/repositories"
)

// MockLLM is a canned-response implementation for tests and local runs
// without provider credentials.
type MockLLM struct {
	// Reply is returned verbatim. An empty Reply with a nil Err simulates
	// the model producing no content.
	Reply string
	// Err is returned as the completion failure when set.
	Err error
	// LastRequest records the most recent request for assertions.
	LastRequest repositories.CompletionRequest
}

var _ repositories.LargeLanguageModel = (*MockLLM)(nil)

// Complete implements repositories.LargeLanguageModel.
func (m *MockLLM) Complete(ctx context.Context, req repositories.CompletionRequest) (string, error) {
	m.LastRequest = req
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
