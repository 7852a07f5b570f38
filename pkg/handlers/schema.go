package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/audit"
	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	"github.com/sqlchat-io/sqlchat-engine/pkg/services"
)

// SchemaResponse carries the formatted schema text for prompt building.
type SchemaResponse struct {
	Schema string `json:"schema"`
}

// SchemaHandler handles schema introspection requests.
type SchemaHandler struct {
	schemaService services.SchemaService
	auditor       *audit.SecurityAuditor
	logger        *zap.Logger
}

// NewSchemaHandler creates a new schema handler.
func NewSchemaHandler(schemaService services.SchemaService, auditor *audit.SecurityAuditor, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService, auditor: auditor, logger: logger}
}

// RegisterRoutes registers the schema handler's routes on the given mux.
func (h *SchemaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/schema", h.Fetch)
}

// Fetch handles POST /api/schema requests. The body is a connection
// descriptor; the response is the formatted schema text.
func (h *SchemaHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var desc models.ConnectionDescriptor
	if err := decodeJSON(r, &desc); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	schema, err := h.schemaService.FetchSchema(r.Context(), desc)
	if err != nil {
		// The catalog path screens the database name with libinjection.
		if errors.Is(err, apperrors.ErrUnsafeQuery) {
			h.auditor.LogInjectionAttempt(desc.Dialect, audit.InjectionDetails{
				Name:  "dbName",
				Value: desc.Database,
			}, r.RemoteAddr)
		}
		h.logger.Error("schema fetch failed",
			zap.String("dialect", string(desc.Dialect)),
			zap.String("error", logging.SanitizeError(err)))
		_ = writeServiceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, SchemaResponse{Schema: schema}); err != nil {
		h.logger.Error("failed to encode schema response", zap.Error(err))
	}
}
