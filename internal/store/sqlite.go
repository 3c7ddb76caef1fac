package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer keeps read-modify-write sequences serialized.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: dbPath}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqlKV implements KV over either the database or an open transaction.
type sqlKV struct {
	q querier
}

func (k sqlKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := k.q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (k sqlKV) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := k.q.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (k sqlKV) Append(ctx context.Context, key string, elem []byte) error {
	current, _, err := k.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := appendRaw(current, elem)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return k.Set(ctx, key, next)
}

func (k sqlKV) Keys(ctx context.Context) ([]string, error) {
	rows, err := k.q.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return sqlKV{q: s.db}.Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return sqlKV{q: s.db}.Set(ctx, key, value)
}

// Append runs inside its own transaction so the read and write are not torn.
func (s *SQLiteStore) Append(ctx context.Context, key string, elem []byte) error {
	return s.Update(ctx, func(kv KV) error {
		return kv.Append(ctx, key, elem)
	})
}

func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	return sqlKV{q: s.db}.Keys(ctx)
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(kv KV) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(sqlKV{q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
