// Package sql provides read-only SQL validation utilities.
package sql

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/xwb1989/sqlparser"

	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// IsSafeSelect reports whether the query consists solely of grammar-level
// SELECT statements (set operations included) under the given dialect's
// grammar. The two grammars disagree where it matters: PostgreSQL treats
// double quotes as identifiers and supports :: casts, MySQL treats
// double quotes as string literals and uses backtick identifiers.
//
// Classification is derived from actual parsing, not keyword search, so
// mutating statements cannot be smuggled in through comments, string
// literals, or case variation. A text containing several statements is
// safe only if every one of them independently parses as a SELECT.
// Empty or unparseable input is unsafe, and so is an unrecognized
// dialect. The function never errors; a negative verdict is the caller's
// hard validation failure.
func IsSafeSelect(dialect models.Dialect, query string) bool {
	switch dialect {
	case models.DialectPostgres:
		return isSafePostgresSelect(query)
	case models.DialectMySQL:
		return isSafeMySQLSelect(query)
	default:
		return false
	}
}

func isSafeMySQLSelect(query string) bool {
	pieces, err := sqlparser.SplitStatementToPieces(query)
	if err != nil {
		return false
	}

	statements := 0
	for _, piece := range pieces {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		stmt, err := sqlparser.Parse(piece)
		if err != nil {
			return false
		}
		// SelectStatement covers plain selects, unions, and
		// parenthesized selects.
		if _, ok := stmt.(sqlparser.SelectStatement); !ok {
			return false
		}
		statements++
	}

	return statements > 0
}

func isSafePostgresSelect(query string) bool {
	result, err := pg_query.Parse(query)
	if err != nil {
		return false
	}
	if len(result.Stmts) == 0 {
		return false
	}

	for _, raw := range result.Stmts {
		if !isPostgresSelect(raw.GetStmt().GetSelectStmt()) {
			return false
		}
	}

	return true
}

// isPostgresSelect checks a SELECT node together with every CTE and
// set-operation arm hanging off it. PostgreSQL allows data-modifying
// statements inside WITH, so CTE bodies must themselves be SELECTs all
// the way down.
func isPostgresSelect(sel *pg_query.SelectStmt) bool {
	if sel == nil {
		return false
	}

	for _, cte := range sel.GetWithClause().GetCtes() {
		expr := cte.GetCommonTableExpr()
		if expr == nil || !isPostgresSelect(expr.GetCtequery().GetSelectStmt()) {
			return false
		}
	}

	if sel.GetLarg() != nil && !isPostgresSelect(sel.GetLarg()) {
		return false
	}
	if sel.GetRarg() != nil && !isPostgresSelect(sel.GetRarg()) {
		return false
	}

	return true
}
