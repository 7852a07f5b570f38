package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// Factory creates a request-scoped client from a caller-supplied
// credential. Matches the signature of NewClient; tests substitute mocks.
type Factory func(ctx context.Context, cred models.AICredential, logger *zap.Logger) (Client, error)

// NewClient creates a client for the credential's provider. The provider
// enum is matched exhaustively: unrecognized values are rejected rather
// than routed to a default provider.
func NewClient(ctx context.Context, cred models.AICredential, logger *zap.Logger) (Client, error) {
	switch cred.Provider {
	case models.ProviderOpenAI:
		return NewOpenAIClient(cred.APIKey, logger), nil
	case models.ProviderGemini:
		return NewGeminiClient(ctx, cred.APIKey, logger)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedProvider, string(cred.Provider))
	}
}

// Ensure NewClient satisfies Factory at compile time.
var _ Factory = NewClient
