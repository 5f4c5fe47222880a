package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// canned reply chosen when the prompt contains Match
type MockRule struct {
	Match string
	Reply string
}

// answers from fixed rules without calling a provider.
// used for LLM_PROVIDER=mock and in tests.
type MockGenerator struct {
	Rules   []MockRule
	Default string

	mu    sync.Mutex
	calls []TextGenerationRequest
}

func NewMockGenerator(rules []MockRule) *MockGenerator {
	return &MockGenerator{Rules: rules}
}

func (m *MockGenerator) Model() string {
	return "mock"
}

func (m *MockGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	prompt := req.SystemPrompt
	for _, msg := range req.Messages {
		prompt += "\n" + msg.Content
	}

	for _, rule := range m.Rules {
		if strings.Contains(prompt, rule.Match) {
			return &TextGenerationResponse{Text: rule.Reply}, nil
		}
	}

	if m.Default == "" {
		return nil, fmt.Errorf("no content in response")
	}

	return &TextGenerationResponse{Text: m.Default}, nil
}

// returns how many requests the generator has received
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}
