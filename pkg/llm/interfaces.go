// Package llm provides request-scoped clients for the supported AI
// providers. Clients are constructed per request from caller-supplied
// credentials; there is no process-wide credential state.
package llm

import "context"

// CompletionRequest is a single prompt-in, text-out model call. The
// engine never uses conversation state, function calling, or streaming.
type CompletionRequest struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Client is the minimal surface the engine needs from a model provider.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
