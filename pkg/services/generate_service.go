package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/llm"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	"github.com/sqlchat-io/sqlchat-engine/pkg/prompts"
	"github.com/sqlchat-io/sqlchat-engine/pkg/retry"
	enginesql "github.com/sqlchat-io/sqlchat-engine/pkg/sql"
)

const (
	// noResultsMessage is returned for empty result sets without paying
	// for a model call.
	noResultsMessage = "No results found."

	generationTemperature = 0.2
	generationMaxTokens   = 1000

	summaryTemperature = 0.3
	summaryMaxTokens   = 200
)

// GenerateResult is the outcome of the NL-to-SQL path.
type GenerateResult struct {
	SQLQuery string
	Results  *datasource.ResultSet
	Summary  string
}

// GenerateService turns a natural-language question into validated SQL,
// executes it, and summarizes the outcome.
type GenerateService interface {
	Generate(ctx context.Context, req models.QueryRequest) (*GenerateResult, error)
}

type generateService struct {
	queries    QueryService
	newClient  llm.Factory
	llmTimeout time.Duration
	retryCfg   *retry.Config
	logger     *zap.Logger
}

// NewGenerateService creates the orchestrator. Pass llm.NewClient as the
// factory; tests substitute mocks. The timeout applies to each model
// call individually, covering its retries.
func NewGenerateService(queries QueryService, newClient llm.Factory, llmTimeout time.Duration, logger *zap.Logger) GenerateService {
	return &generateService{
		queries:    queries,
		newClient:  newClient,
		llmTimeout: llmTimeout,
		retryCfg:   retry.DefaultConfig(),
		logger:     logger,
	}
}

// Generate runs the full pipeline. Each step depends on the previous one
// succeeding, except summarization: a summary failure degrades to a
// row-count message and never fails the request, since the SQL result is
// already the primary payload.
func (s *generateService) Generate(ctx context.Context, req models.QueryRequest) (*GenerateResult, error) {
	// Both enums are rejected before any network I/O.
	if err := req.Dialect.Validate(); err != nil {
		return nil, err
	}

	client, err := s.newClient(ctx, req.AICredential, s.logger)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildGenerationPrompt(req.Dialect, req.Schema, req.Query)

	raw, err := s.complete(ctx, client, llm.CompletionRequest{
		Prompt:      prompt,
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	sqlQuery := enginesql.StripCodeFence(raw)
	if !enginesql.IsSafeSelect(req.Dialect, sqlQuery) {
		s.logger.Warn("model produced unsafe SQL",
			zap.String("provider", string(req.Provider)),
			zap.Int("length", len(sqlQuery)))
		return nil, fmt.Errorf("%w", apperrors.ErrUnsafeGeneratedQuery)
	}

	execReq := models.QueryRequest{
		ConnectionDescriptor: req.ConnectionDescriptor,
		Query:                sqlQuery,
	}
	executed, result, err := s.queries.Execute(ctx, execReq)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		SQLQuery: executed,
		Results:  result,
		Summary:  s.summarize(ctx, client, req.Query, result),
	}, nil
}

// summarize produces the natural-language summary. Empty result sets get
// a fixed message with no model call; a failed model call degrades to a
// row-count message.
func (s *generateService) summarize(ctx context.Context, client llm.Client, question string, result *datasource.ResultSet) string {
	if result.RowCount == 0 {
		return noResultsMessage
	}

	summary, err := s.complete(ctx, client, llm.CompletionRequest{
		Prompt:      prompts.BuildSummaryPrompt(question, result.RowCount, result.Rows),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		s.logger.Warn("summarization failed, degrading to row count", zap.Error(err))
		return fmt.Sprintf("Found %d results.", result.RowCount)
	}

	return strings.TrimSpace(summary)
}

// complete runs one model call with its timeout, retrying transient
// provider failures.
func (s *generateService) complete(ctx context.Context, client llm.Client, req llm.CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()
	return retry.DoWithResult(ctx, s.retryCfg, func() (string, error) {
		return client.Complete(ctx, req)
	})
}
