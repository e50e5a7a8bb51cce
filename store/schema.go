package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

// DefaultTable is the documents table used when none is configured.
const DefaultTable = "fuzzy_docs"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func schemaDDL(table string) string {
	return `CREATE TABLE IF NOT EXISTS ` + table + ` (
    id   TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    meta TEXT
);`
}

// EnsureSchema creates the documents table in the provided database if it
// does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if !identifierPattern.MatchString(table) {
		return fmt.Errorf("store: invalid table name %q", table)
	}
	_, err := db.ExecContext(ctx, schemaDDL(table))
	return err
}
