// Package store persists imported articles in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an article does not exist.
var ErrNotFound = errors.New("article not found")

// DB wraps the hub's article database.
type DB struct {
	sql  *sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps :memory: databases alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return sqlDB, nil
}

// Open opens or creates the article database at path and ensures its schema.
func Open(ctx context.Context, path string) (*DB, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}
	db := &DB{sql: sqlDB, path: path}
	if err := db.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return db, nil
}

// OpenMemory opens a private in-memory database.
func OpenMemory(ctx context.Context) (*DB, error) {
	return Open(ctx, ":memory:")
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

func (db *DB) initSchema(ctx context.Context) error {
	_, err := db.sql.ExecContext(ctx, schema)
	return err
}
