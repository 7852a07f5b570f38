// Package services implements the engine's request-scoped operations:
// schema introspection, validated query execution, and NL-to-SQL
// generation.
package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// SchemaService produces the textual schema description for a database.
type SchemaService interface {
	FetchSchema(ctx context.Context, desc models.ConnectionDescriptor) (string, error)
}

type schemaService struct {
	connect datasource.ConnectFunc
	logger  *zap.Logger
}

// NewSchemaService creates a schema service. Pass datasource.Connect as
// the connect function; tests substitute fakes.
func NewSchemaService(connect datasource.ConnectFunc, logger *zap.Logger) SchemaService {
	return &schemaService{connect: connect, logger: logger}
}

// FetchSchema runs the dialect's catalog query over a fresh connection
// and formats the result for use in a model prompt.
func (s *schemaService) FetchSchema(ctx context.Context, desc models.ConnectionDescriptor) (string, error) {
	query, args, err := datasource.CatalogQuery(desc)
	if err != nil {
		return "", err
	}

	executor, err := s.connect(ctx, desc)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := executor.Close(); err != nil {
			s.logger.Warn("failed to close connection", zap.Error(err))
		}
	}()

	result, err := executor.ExecuteQuery(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrSchemaFetch, err)
	}

	return FormatSchema(result), nil
}

// FormatSchema flattens catalog rows into one block per table:
//
//	Table: users
//	Columns: id (integer), name (text)
//
// Blocks are separated by blank lines. Tables keep first-seen order and
// columns keep row order; rows are read positionally as
// (table, column, type) triples.
func FormatSchema(result *datasource.ResultSet) string {
	if result == nil || len(result.Columns) < 3 {
		return ""
	}

	tableKey, columnKey, typeKey := result.Columns[0], result.Columns[1], result.Columns[2]

	var tableOrder []string
	columnsByTable := make(map[string][]string)
	for _, row := range result.Rows {
		table := valueString(row[tableKey])
		column := valueString(row[columnKey])
		dataType := valueString(row[typeKey])

		if _, seen := columnsByTable[table]; !seen {
			tableOrder = append(tableOrder, table)
		}
		columnsByTable[table] = append(columnsByTable[table], fmt.Sprintf("%s (%s)", column, dataType))
	}

	blocks := make([]string, 0, len(tableOrder))
	for _, table := range tableOrder {
		blocks = append(blocks, fmt.Sprintf("Table: %s\nColumns: %s",
			table, strings.Join(columnsByTable[table], ", ")))
	}

	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

// valueString renders a driver value as text. MySQL's text protocol
// returns []byte for catalog columns.
func valueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
