package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// Executor runs queries over a single short-lived MySQL connection.
type Executor struct {
	db *sql.DB
}

// NewExecutor opens a connection for the descriptor and verifies liveness
// with a ping before returning it. The caller owns the executor and must
// Close it on every path.
func NewExecutor(ctx context.Context, desc models.ConnectionDescriptor) (*Executor, error) {
	connector, err := mysql.NewConnector(driverConfig(desc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConnection, err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping failed: %v", apperrors.ErrConnection, err)
	}

	return &Executor{db: db}, nil
}

// NewExecutorFromDB wraps an existing handle. Used by tests with a mocked
// driver.
func NewExecutorFromDB(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// ExecuteQuery runs the statement and materializes all rows eagerly,
// preserving the driver's column and row order.
func (e *Executor) ExecuteQuery(ctx context.Context, sqlQuery string, args ...any) (*datasource.ResultSet, error) {
	rows, err := e.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecution, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: read columns: %v", apperrors.ErrExecution, err)
	}

	resultRows := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", apperrors.ErrExecution, err)
		}

		rowMap := make(map[string]any, len(columns))
		for i, col := range columns {
			// The driver returns text-protocol values as []byte;
			// surface them as strings for JSON serialization.
			if b, ok := values[i].([]byte); ok {
				rowMap[col] = string(b)
			} else {
				rowMap[col] = values[i]
			}
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
	return e.db.Close()
}

// Ensure Executor implements datasource.QueryExecutor at compile time.
var _ datasource.QueryExecutor = (*Executor)(nil)
