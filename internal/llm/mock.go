package llm

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"unicode/utf8"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing. It returns canned
// responses in FIFO order and records all requests. When the queue is empty
// it delegates to Fallback, or fails with ErrProviderUnavailable.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	Fallback Provider
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		fallback := m.Fallback
		m.mu.Unlock()
		if fallback != nil {
			return fallback.Generate(ctx, req)
		}
		return nil, &ErrProviderUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: stopEnd,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// echoExcerptRunes bounds the text EchoProvider puts in each field.
const echoExcerptRunes = 280

// EchoProvider answers offline by excerpting the last user message. With a
// schema it fills every top-level string property with the excerpt. It
// backs the "mock" provider so the tool works without credentials.
type EchoProvider struct{}

func NewEchoProvider() *EchoProvider {
	return &EchoProvider{}
}

func (EchoProvider) Generate(_ context.Context, req Request) (*Response, error) {
	var text string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			text = req.Messages[i].Content
			break
		}
	}
	excerpt := excerpt(text, echoExcerptRunes)

	content := json.RawMessage(excerpt)
	if req.Schema != nil {
		obj := map[string]string{}
		if props, ok := req.Schema.Definition["properties"].(map[string]any); ok {
			for name, def := range props {
				if d, ok := def.(map[string]any); ok && d["type"] == "string" {
					obj[name] = excerpt
				}
			}
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		content = b
	}

	words := len(strings.Fields(text))
	return finish(req, content, Usage{
		InputTokens:  words,
		OutputTokens: len(strings.Fields(excerpt)),
		TotalTokens:  words + len(strings.Fields(excerpt)),
	}, "echo", stopEnd)
}

func (EchoProvider) ModelID() string {
	return "echo"
}

// excerpt collapses whitespace and cuts s to at most n runes on a word
// boundary, appending "..." when it cut.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)[:n]
	cut := string(r)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
