// Package datasource resolves database dialects to connection adapters and
// catalog queries. Adapters register themselves from their own packages;
// importing an adapter package makes its dialect available.
package datasource

import (
	"context"
)

// QueryExecutor runs statements against a single short-lived connection.
// Connections are opened fresh per request and must be released with Close
// on every path; implementations verify liveness before first use.
type QueryExecutor interface {
	// ExecuteQuery runs a statement and materializes the full result
	// eagerly. Column order and row order follow the driver.
	ExecuteQuery(ctx context.Context, sqlQuery string, args ...any) (*ResultSet, error)

	// Close releases the underlying connection.
	Close() error
}

// ResultSet is the generic tabular result of a query.
type ResultSet struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
}
