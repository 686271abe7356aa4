package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/Akesh-M/JournalAssistCrew/core"
)

// Request captures the normalized model input produced by a capability:
// agent instructions plus the full conversation history it observed.
type Request struct {
	Instructions string         `json:"instructions"`
	Messages     []core.Message `json:"messages"`
}

// TokenUsage captures token accounting for a completed generation.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the single completed generation returned by a provider.
type Response struct {
	ID           string      `json:"id"`
	Content      string      `json:"content"`
	FinishReason string      `json:"finish_reason"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal interface capabilities require to drive generation.
// Generate must honor context cancellation and return exactly one response.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model for tests and local runs.
// Responses are keyed on the content of the last message in the request;
// unmatched prompts get a deterministic fallback reply.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	err       error
	calls     []Request
}

// NewMockModel constructs a MockModel with the given identity.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a canned completion for a prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// FailWith makes every subsequent Generate call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the requests seen so far, in order.
func (m *MockModel) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]Request, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if m.err != nil {
		return nil, m.err
	}

	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	prompt := req.Messages[len(req.Messages)-1].Content
	content, ok := m.responses[prompt]
	if !ok {
		content = fmt.Sprintf("Mock response to: %s", prompt)
	}

	return &Response{Content: content, FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
