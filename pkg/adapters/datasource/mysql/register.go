package mysql

import (
	"context"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// catalogQuery lists every column of the target database, ordered by
// table name. The database name is bound as a parameter; interpolating a
// caller-controlled name into the SQL text would be an injection vector.
const catalogQuery = `
	SELECT table_name, column_name, data_type
	FROM information_schema.columns
	WHERE table_schema = ?
	ORDER BY table_name`

func init() {
	datasource.Register(datasource.Registration{
		Dialect:     models.DialectMySQL,
		DisplayName: "MySQL",
		Connect: func(ctx context.Context, desc models.ConnectionDescriptor) (datasource.QueryExecutor, error) {
			return NewExecutor(ctx, desc)
		},
		CatalogQuery: func(database string) (string, []any) {
			return catalogQuery, []any{database}
		},
	})
}
