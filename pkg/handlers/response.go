// Package handlers exposes the engine's HTTP surface.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/logging"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// statusForError maps service errors to an HTTP status and error code.
// Caller mistakes (bad enums, unsafe or broken SQL) are 400s; upstream
// failures (datasource unreachable, model provider down) are 500s.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedDialect):
		return http.StatusBadRequest, "unsupported_dialect"
	case errors.Is(err, apperrors.ErrUnsupportedProvider):
		return http.StatusBadRequest, "unsupported_provider"
	case errors.Is(err, apperrors.ErrUnsafeGeneratedQuery):
		return http.StatusBadRequest, "unsafe_generated_query"
	case errors.Is(err, apperrors.ErrUnsafeQuery):
		return http.StatusBadRequest, "unsafe_query"
	case errors.Is(err, apperrors.ErrExecution):
		return http.StatusBadRequest, "execution_failed"
	case errors.Is(err, apperrors.ErrConnection):
		return http.StatusInternalServerError, "connection_failed"
	case errors.Is(err, apperrors.ErrSchemaFetch):
		return http.StatusInternalServerError, "schema_fetch_failed"
	case errors.Is(err, apperrors.ErrModelProvider):
		return http.StatusInternalServerError, "model_provider_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeServiceError renders a service error with its mapped status.
// Driver and provider errors can echo credentials, so the message is
// sanitized before leaving the process.
func writeServiceError(w http.ResponseWriter, err error) error {
	status, code := statusForError(err)
	return ErrorResponse(w, status, code, logging.SanitizeError(err))
}

// decodeJSON parses the request body into dst and closes the body.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
