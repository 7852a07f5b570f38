package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/audit"
	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	"github.com/sqlchat-io/sqlchat-engine/pkg/services"
)

// ExecuteResponse carries the executed statement and its results.
type ExecuteResponse struct {
	Query   string                `json:"query"`
	Results *datasource.ResultSet `json:"results"`
}

// GenerateResponse carries the generated SQL, its results, and the
// natural-language summary.
type GenerateResponse struct {
	SQLQuery string                `json:"sql_query"`
	Results  *datasource.ResultSet `json:"results"`
	Summary  string                `json:"summary"`
}

// QueryHandler handles direct execution and NL-to-SQL generation.
type QueryHandler struct {
	queryService    services.QueryService
	generateService services.GenerateService
	auditor         *audit.SecurityAuditor
	logger          *zap.Logger
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(queryService services.QueryService, generateService services.GenerateService, auditor *audit.SecurityAuditor, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryService:    queryService,
		generateService: generateService,
		auditor:         auditor,
		logger:          logger,
	}
}

// RegisterRoutes registers the query handler's routes on the given mux.
func (h *QueryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/execute", h.Execute)
	mux.HandleFunc("POST /api/generate", h.Generate)
}

// Execute handles POST /api/execute requests. The body carries a
// connection descriptor plus the SQL to run; only SELECT statements are
// accepted.
func (h *QueryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	executed, result, err := h.queryService.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsafeQuery) {
			h.auditor.LogUnsafeQuery(req.Dialect, req.Query, r.RemoteAddr)
		}
		h.logger.Warn("query execution failed",
			zap.String("dialect", string(req.Dialect)),
			zap.String("query", logging.SanitizeQuery(req.Query)),
			zap.String("error", logging.SanitizeError(err)))
		_ = writeServiceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ExecuteResponse{Query: executed, Results: result}); err != nil {
		h.logger.Error("failed to encode execute response", zap.Error(err))
	}
}

// Generate handles POST /api/generate requests. The body carries a
// connection descriptor, a model credential, the natural-language
// question in the query field, and the schema text from /api/schema.
func (h *QueryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	result, err := h.generateService.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsafeGeneratedQuery) {
			h.auditor.LogUnsafeGeneratedQuery(req.Dialect, req.Provider, r.RemoteAddr)
		}
		h.logger.Warn("generation failed",
			zap.String("dialect", string(req.Dialect)),
			zap.String("provider", string(req.Provider)),
			zap.String("error", logging.SanitizeError(err)))
		_ = writeServiceError(w, err)
		return
	}

	response := GenerateResponse{
		SQLQuery: result.SQLQuery,
		Results:  result.Results,
		Summary:  result.Summary,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("failed to encode generate response", zap.Error(err))
	}
}
