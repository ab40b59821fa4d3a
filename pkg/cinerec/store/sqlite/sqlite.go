package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
	"github.com/cognicore/cinerec/pkg/cinerec/store"
)

// MemoryDSN keeps the database private to the process.
const MemoryDSN = ":memory:"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite fact store. An empty dsn means MemoryDSN.
// The pool is pinned to one connection so an in-memory database is shared by
// every statement.
func OpenSQLite(ctx context.Context, dsn string) (store.Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema recreates the facts table. The store is always re-seeded from
// the compiled catalog, so nothing is carried over from a previous run.
func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
DROP TABLE IF EXISTS facts;
CREATE TABLE facts (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT UNIQUE NOT NULL,
	genre TEXT NOT NULL,
	year INTEGER NOT NULL,
	rating REAL NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Assert inserts facts in one transaction.
func (s *sqliteStore) Assert(ctx context.Context, facts ...catalog.Fact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO facts (id, genre, year, rating) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range facts {
		if _, err := stmt.ExecContext(ctx, f.ID, string(f.Genre), f.Year, f.Rating); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("fact %q: %w", f.ID, internalerr.ErrDuplicate)
			}
			return fmt.Errorf("insert fact %q: %w", f.ID, err)
		}
	}

	return tx.Commit()
}

// Facts reads every fact back in insertion order.
func (s *sqliteStore) Facts(ctx context.Context) ([]catalog.Fact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, genre, year, rating FROM facts ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := []catalog.Fact{}
	for rows.Next() {
		var (
			f     catalog.Fact
			genre string
		)
		if err := rows.Scan(&f.ID, &genre, &f.Year, &f.Rating); err != nil {
			return nil, err
		}
		f.Genre = catalog.Genre(genre)
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// Len counts the stored facts.
func (s *sqliteStore) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM facts`).Scan(&n)
	return n, err
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
