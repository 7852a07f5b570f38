package postgres

import (
	"context"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// catalogQuery lists every column of the public schema, ordered by table
// name. The database name is not part of the filter on PostgreSQL, so no
// arguments are bound.
const catalogQuery = `
	SELECT table_name, column_name, data_type
	FROM information_schema.columns
	WHERE table_schema = 'public'
	ORDER BY table_name`

func init() {
	datasource.Register(datasource.Registration{
		Dialect:     models.DialectPostgres,
		DisplayName: "PostgreSQL",
		Connect: func(ctx context.Context, desc models.ConnectionDescriptor) (datasource.QueryExecutor, error) {
			return NewExecutor(ctx, desc)
		},
		CatalogQuery: func(string) (string, []any) {
			return catalogQuery, nil
		},
	})
}
