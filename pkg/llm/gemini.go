package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
)

const geminiModel = "gemini-2.0-flash-exp"

// GeminiClient calls the Gemini generate-content API.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a client bound to the request's API key.
func NewGeminiClient(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrModelProvider, err)
	}

	return &GeminiClient{
		client: client,
		model:  geminiModel,
		logger: logger.Named("gemini"),
	}, nil
}

// Complete sends a single-prompt generation request and returns the text.
func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(req.Temperature)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		c.logger.Error("completion request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.String("error", logging.SanitizeError(err)))
		return "", fmt.Errorf("%w: %v", apperrors.ErrModelProvider, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", apperrors.ErrModelProvider)
	}

	c.logger.Debug("completion request completed",
		zap.Duration("elapsed", time.Since(start)))

	return text, nil
}

// Ensure GeminiClient implements Client at compile time.
var _ Client = (*GeminiClient)(nil)
