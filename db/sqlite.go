package db

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// StorageError is the single failure mode of the relational layer.
// Driver errors never escape uncovered; callers match on *StorageError
// (or errors.As) and can unwrap for the cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Open creates or opens the single database file and runs the
// idempotent schema script. Safe to call on every construction.
func Open(path string) (DB, error) {
	conn, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, storageErr("open", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, storageErr("ping", err)
	}

	// Reference integrity is the pipeline's responsibility; orphaned
	// records are skipped with a warning instead of aborting the run.
	if _, err := conn.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		conn.Close()
		return nil, storageErr("pragma", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, storageErr("create schema", err)
	}

	return &sqliteDB{conn: conn}, nil
}

type sqliteDB struct {
	conn *sqlx.DB
}

func (db *sqliteDB) Close() error {
	return db.conn.Close()
}

// execMany runs one statement for every arg set inside a single
// transaction, committing only when every row succeeds.
func (db *sqliteDB) execMany(ctx context.Context, op, query string, args []any) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr(op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		return storageErr(op, err)
	}
	defer stmt.Close()

	for _, arg := range args {
		if _, err := stmt.ExecContext(ctx, arg); err != nil {
			return storageErr(op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, err)
	}
	return nil
}

func (db *sqliteDB) TableCount(ctx context.Context, table string) (int, error) {
	if !slices.Contains(Tables, table) {
		return 0, storageErr("table count", fmt.Errorf("unknown table %q", table))
	}

	var count int
	err := db.conn.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
	if err != nil {
		return 0, storageErr("table count", err)
	}
	return count, nil
}

func (db *sqliteDB) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, len(Tables))
	for _, table := range Tables {
		count, err := db.TableCount(ctx, table)
		if err != nil {
			stats[table] = 0
			continue
		}
		stats[table] = count
	}
	return stats, nil
}
