package review

import (
	"context"
	"fmt"
	"sync"

	"boardroom/internal/reasoning"
)

// mockClient scripts reasoning responses per request. The respond func
// sees the full request, so tests can key behavior off the prompt text.
type mockClient struct {
	mu      sync.Mutex
	calls   []reasoning.Request
	respond func(req reasoning.Request) (string, error)
}

func (m *mockClient) Generate(_ context.Context, req reasoning.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.respond == nil {
		return critiqueJSON(75, "fine"), nil
	}
	return m.respond(req)
}

func (m *mockClient) Model() string { return "mock" }

func (m *mockClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// critiqueJSON builds a minimal valid critique payload.
func critiqueJSON(score int, insight string) string {
	return fmt.Sprintf(`{"insight": %q, "score": %d, "recommendations": ["rec for %s"], "concerns": ["concern for %s"]}`,
		insight, score, insight, insight)
}
