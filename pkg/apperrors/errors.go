// Package apperrors defines the error taxonomy shared across the engine.
// Handlers match these with errors.Is to pick HTTP status codes.
package apperrors

import "errors"

var (
	// ErrUnsupportedDialect indicates an unrecognized database dialect value.
	// Rejected before any I/O.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")

	// ErrUnsupportedProvider indicates an unrecognized AI provider value.
	// Rejected before any I/O.
	ErrUnsupportedProvider = errors.New("unsupported AI provider")

	// ErrUnsafeQuery indicates a user-supplied statement failed read-only
	// validation. Never allowed to reach a database connection.
	ErrUnsafeQuery = errors.New("only SELECT queries are allowed")

	// ErrUnsafeGeneratedQuery is the same failure for model-produced SQL,
	// kept distinct for diagnostics.
	ErrUnsafeGeneratedQuery = errors.New("generated query is not a SELECT statement")

	// ErrConnection indicates the database connection could not be
	// established or failed the liveness check.
	ErrConnection = errors.New("database connection failed")

	// ErrExecution indicates the database rejected or failed a validated
	// statement.
	ErrExecution = errors.New("SQL execution failed")

	// ErrSchemaFetch indicates the catalog query failed.
	ErrSchemaFetch = errors.New("schema fetch failed")

	// ErrModelProvider indicates the external model call failed outright.
	ErrModelProvider = errors.New("AI provider request failed")
)
