package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// Executor runs queries over a single short-lived PostgreSQL connection.
type Executor struct {
	conn *pgx.Conn
}

// NewExecutor opens a connection for the descriptor and verifies liveness
// with a ping before returning it. The caller owns the executor and must
// Close it on every path.
func NewExecutor(ctx context.Context, desc models.ConnectionDescriptor) (*Executor, error) {
	conn, err := pgx.Connect(ctx, BuildConnString(desc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("%w: ping failed: %v", apperrors.ErrConnection, err)
	}

	return &Executor{conn: conn}, nil
}

// ExecuteQuery runs the statement and materializes all rows eagerly,
// preserving the driver's column and row order.
func (e *Executor) ExecuteQuery(ctx context.Context, sqlQuery string, args ...any) (*datasource.ResultSet, error) {
	rows, err := e.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecution, err)
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	resultRows := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: read row values: %v", apperrors.ErrExecution, err)
		}

		rowMap := make(map[string]any, len(columns))
		for i, col := range columns {
			rowMap[col] = values[i]
		}
		resultRows = append(resultRows, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecution, err)
	}

	return &datasource.ResultSet{
		Columns:  columns,
		Rows:     resultRows,
		RowCount: len(resultRows),
	}, nil
}

// Close releases the connection.
func (e *Executor) Close() error {
	return e.conn.Close(context.Background())
}

// Ensure Executor implements datasource.QueryExecutor at compile time.
var _ datasource.QueryExecutor = (*Executor)(nil)
