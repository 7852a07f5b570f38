package sql

import (
	"testing"

	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

func TestIsSafeSelect_MySQLAcceptsReadOnlyStatements(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"simple select", "SELECT 1"},
		{"lowercase", "select * from users"},
		{"mixed case", "sELeCt id FROM orders"},
		{"trailing semicolon", "SELECT 1;"},
		{"where clause", "SELECT id, name FROM users WHERE active = true"},
		{"join", "SELECT u.id FROM users u JOIN orders o ON o.user_id = u.id"},
		{"union", "SELECT id FROM users UNION SELECT id FROM admins"},
		{"backtick identifiers", "SELECT * FROM `users` WHERE `name` = 'x'"},
		{"keyword inside string literal", "SELECT * FROM logs WHERE message = 'DROP TABLE users'"},
		{"keyword inside comment", "SELECT /* DELETE FROM t */ 1"},
		{"two selects", "SELECT 1; SELECT 2"},
		{"aggregate", "SELECT COUNT(*) FROM orders GROUP BY status"},
		{"subquery", "SELECT * FROM (SELECT id FROM users) AS u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsSafeSelect(models.DialectMySQL, tt.query) {
				t.Errorf("expected %q to be judged safe", tt.query)
			}
		})
	}
}

func TestIsSafeSelect_MySQLRejectsUnsafeStatements(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"insert", "INSERT INTO users (id) VALUES (1)"},
		{"update", "UPDATE users SET name = 'x'"},
		{"delete", "DELETE FROM users"},
		{"drop", "DROP TABLE users"},
		{"create", "CREATE TABLE t (id INT)"},
		{"truncate", "TRUNCATE TABLE users"},
		{"select then delete", "SELECT * FROM t; DELETE FROM t"},
		{"delete then select", "DELETE FROM t; SELECT * FROM t"},
		{"case-varied mutation", "dElEtE FROM users"},
		{"unparseable", "SELEKT * FORM t"},
		{"bare keyword", "SELECT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsSafeSelect(models.DialectMySQL, tt.query) {
				t.Errorf("expected %q to be judged unsafe", tt.query)
			}
		})
	}
}

// PostgreSQL-only syntax must pass under the PostgreSQL grammar even
// though the MySQL grammar would reject it.
func TestIsSafeSelect_PostgresAcceptsDialectSyntax(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"simple select", "SELECT 1"},
		{"double-quoted table", `SELECT * FROM "users"`},
		{"double-quoted columns", `SELECT "id" FROM "Users" WHERE "name" = 'x'`},
		{"cast operator", "SELECT '1'::int"},
		{"dollar-quoted literal", "SELECT $$DROP TABLE users$$"},
		{"ilike", "SELECT id FROM users WHERE name ILIKE '%ann%'"},
		{"limit offset", "SELECT id FROM users ORDER BY id LIMIT 10 OFFSET 5"},
		{"union", "SELECT id FROM users UNION SELECT id FROM admins"},
		{"cte", "WITH recent AS (SELECT id FROM users) SELECT * FROM recent"},
		{"keyword inside string literal", "SELECT * FROM logs WHERE message = 'DROP TABLE users'"},
		{"keyword inside comment", "SELECT /* DELETE FROM t */ 1"},
		{"two selects", "SELECT 1; SELECT 2"},
		{"trailing semicolon", "SELECT 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsSafeSelect(models.DialectPostgres, tt.query) {
				t.Errorf("expected %q to be judged safe", tt.query)
			}
		})
	}
}

func TestIsSafeSelect_PostgresRejectsUnsafeStatements(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"insert", "INSERT INTO users (id) VALUES (1)"},
		{"update", "UPDATE users SET name = 'x'"},
		{"delete", "DELETE FROM users"},
		{"drop", "DROP TABLE users"},
		{"create", "CREATE TABLE t (id INT)"},
		{"truncate", "TRUNCATE TABLE users"},
		{"select then delete", "SELECT * FROM t; DELETE FROM t"},
		{"explain", "EXPLAIN SELECT 1"},
		{"mutating cte", "WITH d AS (DELETE FROM users RETURNING id) SELECT * FROM d"},
		{"nested mutating cte", "WITH a AS (WITH b AS (DELETE FROM t RETURNING id) SELECT * FROM b) SELECT * FROM a"},
		{"backtick identifiers", "SELECT * FROM `users`"},
		{"unparseable", "SELEKT * FORM t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsSafeSelect(models.DialectPostgres, tt.query) {
				t.Errorf("expected %q to be judged unsafe", tt.query)
			}
		})
	}
}

func TestIsSafeSelect_UnknownDialect(t *testing.T) {
	if IsSafeSelect("sqlite", "SELECT 1") {
		t.Error("unknown dialect must never be judged safe")
	}
}

// The verdict is a pure function of the dialect and the text.
func TestIsSafeSelect_Idempotent(t *testing.T) {
	tests := []struct {
		dialect models.Dialect
		query   string
	}{
		{models.DialectMySQL, "SELECT 1"},
		{models.DialectMySQL, "DROP TABLE users"},
		{models.DialectPostgres, `SELECT * FROM "users"`},
		{models.DialectPostgres, "SELECT * FROM t; DELETE FROM t"},
		{models.DialectPostgres, ""},
	}

	for _, tt := range tests {
		first := IsSafeSelect(tt.dialect, tt.query)
		second := IsSafeSelect(tt.dialect, tt.query)
		if first != second {
			t.Errorf("verdict for %s %q changed between calls: %v then %v", tt.dialect, tt.query, first, second)
		}
	}
}
