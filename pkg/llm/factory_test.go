package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

func TestNewClient_OpenAI(t *testing.T) {
	cred := models.AICredential{Provider: models.ProviderOpenAI, APIKey: "sk-test"}

	client, err := NewClient(context.Background(), cred, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("expected *OpenAIClient, got %T", client)
	}
}

func TestNewClient_Gemini(t *testing.T) {
	cred := models.AICredential{Provider: models.ProviderGemini, APIKey: "test-key"}

	client, err := NewClient(context.Background(), cred, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*GeminiClient); !ok {
		t.Errorf("expected *GeminiClient, got %T", client)
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	// The original service silently routed unknown providers to Gemini;
	// here they must be rejected explicitly.
	for _, provider := range []string{"", "anthropic", "Gemini", "OPENAI"} {
		cred := models.AICredential{Provider: models.Provider(provider), APIKey: "key"}

		_, err := NewClient(context.Background(), cred, zap.NewNop())
		if !errors.Is(err, apperrors.ErrUnsupportedProvider) {
			t.Errorf("provider %q: expected ErrUnsupportedProvider, got %v", provider, err)
		}
	}
}
