package datasource

import (
	"context"
	"fmt"
	"sync"

	"github.com/sqlchat-io/sqlchat-engine/pkg/apperrors"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	enginesql "github.com/sqlchat-io/sqlchat-engine/pkg/sql"
)

// ConnectFunc opens a fresh executor for one request.
type ConnectFunc func(ctx context.Context, desc models.ConnectionDescriptor) (QueryExecutor, error)

// Registration describes a dialect adapter. CatalogQuery returns the
// dialect's information_schema query plus bound arguments for the given
// target database name; the name must never be interpolated into the SQL
// text itself.
type Registration struct {
	Dialect      models.Dialect
	DisplayName  string
	Connect      ConnectFunc
	CatalogQuery func(database string) (query string, args []any)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[models.Dialect]Registration)
)

// Register is called by each adapter's init() function.
func Register(reg Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reg.Dialect] = reg
}

// Connect validates the dialect and opens a fresh executor for it.
// Unrecognized dialects are rejected before any connection attempt.
func Connect(ctx context.Context, desc models.ConnectionDescriptor) (QueryExecutor, error) {
	reg, err := lookup(desc.Dialect)
	if err != nil {
		return nil, err
	}
	return reg.Connect(ctx, desc)
}

// CatalogQuery resolves the schema-introspection query for the
// descriptor's dialect. The caller-controlled database name is screened
// for injection fingerprints in addition to being bound as a parameter.
func CatalogQuery(desc models.ConnectionDescriptor) (string, []any, error) {
	reg, err := lookup(desc.Dialect)
	if err != nil {
		return "", nil, err
	}
	if hit := enginesql.CheckIdentifier("dbName", desc.Database); hit != nil {
		return "", nil, fmt.Errorf("%w: database name failed injection screening (fingerprint %s)",
			apperrors.ErrUnsafeQuery, hit.Fingerprint)
	}
	query, args := reg.CatalogQuery(desc.Database)
	return query, args, nil
}

func lookup(dialect models.Dialect) (Registration, error) {
	if err := dialect.Validate(); err != nil {
		return Registration{}, err
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[dialect]
	if !ok {
		return Registration{}, fmt.Errorf("%w: no adapter registered for %q",
			apperrors.ErrUnsupportedDialect, string(dialect))
	}
	return reg, nil
}
