package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/viant/sqlite-fuzz/engine"
	"github.com/viant/sqlite-fuzz/fuzz"
)

// ErrNilDB is returned when a store is created without a database.
var ErrNilDB = errors.New("store: db is nil")

// SQLiteStore implements Store on a SQLite table. Scoring runs inside SQLite
// through the gram, ratio and partial_ratio functions, so the database must be
// opened after engine.RegisterFuzzFunctions (engine.Open does this).
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the documents
// table exists. An empty table name selects DefaultTable.
func NewSQLiteStore(ctx context.Context, db *sql.DB, table string) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if table == "" {
		table = DefaultTable
	}
	engine.RegisterFuzzFunctions()
	if err := EnsureSchema(ctx, db, table); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, table: table}, nil
}

// AddDocuments upserts documents in a single transaction. Documents without an
// ID get a random UUID.
func (s *SQLiteStore) AddDocuments(ctx context.Context, docs []Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+s.table+`(id, text, meta) VALUES(?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  text = excluded.text,
  meta = excluded.meta`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id := d.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, id, d.Text, d.Meta); err != nil {
			return nil, fmt.Errorf("store: insert %q: %w", id, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Debug().Str("table", s.table).Int("count", len(ids)).Msg("documents stored")
	return ids, nil
}

// Search scores every document against query inside SQLite and returns the
// matches ordered by descending score, then insertion order.
func (s *SQLiteStore) Search(ctx context.Context, query string, opts SearchOptions) ([]Match, error) {
	m := opts.Method
	if m == "" {
		m = fuzz.MethodPartialRatio
	}
	if !m.Valid() {
		return nil, fmt.Errorf("store: %w: %q", fuzz.ErrUnknownMethod, m)
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	// The method name is one of the fixed function names, never user text.
	q := `SELECT id, text, COALESCE(meta, ''), score FROM (
    SELECT rowid AS rid, id, text, meta, ` + string(m) + `(text, ?) AS score FROM ` + s.table + `
) WHERE score >= ? ORDER BY score DESC, rid LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, query, opts.MinScore, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var match Match
		if err := rows.Scan(&match.ID, &match.Text, &match.Meta, &match.Score); err != nil {
			return nil, err
		}
		out = append(out, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a document by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: Remove called with empty id")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE id = ?`, id)
	return err
}

// Count returns the number of stored documents.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+s.table).Scan(&n)
	return n, err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
