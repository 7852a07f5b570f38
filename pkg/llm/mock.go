package llm

import "context"

// MockClient is a test double for Client. CompleteFunc drives the
// behavior; calls are recorded for assertions.
type MockClient struct {
	CompleteFunc func(ctx context.Context, req CompletionRequest) (string, error)
	Calls        []CompletionRequest
}

// Complete records the request and delegates to CompleteFunc.
func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

// Ensure MockClient implements Client at compile time.
var _ Client = (*MockClient)(nil)
