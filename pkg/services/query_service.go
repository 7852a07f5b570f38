package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	enginesql "github.com/sqlchat-io/sqlchat-engine/pkg/sql"
)

// QueryService executes caller-supplied SQL after read-only validation.
type QueryService interface {
	// Execute validates and runs the request's query, returning the
	// cleaned statement that was actually executed alongside the result.
	Execute(ctx context.Context, req models.QueryRequest) (string, *datasource.ResultSet, error)
}

type queryService struct {
	connect datasource.ConnectFunc
	timeout time.Duration
	logger  *zap.Logger
}

// NewQueryService creates a query service. The timeout bounds the
// connection attempt and statement execution together.
func NewQueryService(connect datasource.ConnectFunc, timeout time.Duration, logger *zap.Logger) QueryService {
	return &queryService{connect: connect, timeout: timeout, logger: logger}
}

func (s *queryService) Execute(ctx context.Context, req models.QueryRequest) (string, *datasource.ResultSet, error) {
	// The dialect picks the validation grammar, so it must be checked
	// before the query is.
	if err := req.Dialect.Validate(); err != nil {
		return "", nil, err
	}

	query := enginesql.StripCodeFence(req.Query)

	// Validation is local and synchronous; an unsafe statement never
	// reaches a connection.
	if !enginesql.IsSafeSelect(req.Dialect, query) {
		s.logger.Info("rejected unsafe query",
			zap.String("dialect", string(req.Dialect)),
			zap.String("query", logging.SanitizeQuery(query)))
		return "", nil, fmt.Errorf("%w", apperrors.ErrUnsafeQuery)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	executor, err := s.connect(ctx, req.ConnectionDescriptor)
	if err != nil {
		return "", nil, err
	}
	defer func() {
		if err := executor.Close(); err != nil {
			s.logger.Warn("failed to close connection", zap.Error(err))
		}
	}()

	result, err := executor.ExecuteQuery(ctx, query)
	if err != nil {
		return "", nil, err
	}

	return query, result, nil
}
