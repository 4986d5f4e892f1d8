// Package sqlite implements the store.KV contract on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trovehq/trove/internal/model"
	"github.com/trovehq/trove/internal/store"
)

const schema = `CREATE TABLE IF NOT EXISTS items (
	id     TEXT PRIMARY KEY,
	record BLOB NOT NULL
)`

// Store is a KV over a single items table. The record column holds the
// codec-encoded item; no secondary indexes exist by contract.
type Store struct {
	db *sql.DB
}

var _ store.KV = (*Store)(nil)

// New opens (or creates) the database file at path and ensures the schema.
func New(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires a Store onto an existing connection (used by tests).
func NewWithDB(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying *sql.DB connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var record []byte
	err := s.db.QueryRowContext(ctx, `SELECT record FROM items WHERE id = ?`, key).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return record, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, record) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET record = excluded.record`, key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Scan iterates every pair in primary-key order. Each call opens a fresh
// cursor, so scans are restartable and independent of one another.
func (s *Store) Scan(ctx context.Context, fn func(key string, value []byte) error) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, record FROM items ORDER BY id`)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var record []byte
		if err := rows.Scan(&key, &record); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if err := fn(key, record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
