package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps cached assets in a sqlite table. With the default
// ":memory:" path the cache lives exactly as long as the process; a file path
// lets a restarted server start warm.
type SQLiteStore struct {
	db *sql.DB
}

const createAssetTable = `
CREATE TABLE IF NOT EXISTS asset_cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// OpenSQLiteStore opens (and if needed creates) the cache table at path.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	// Every new connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createAssetTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create asset_cache table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM asset_cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO asset_cache (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO NOTHING
	`, key, value)
	return err
}

// Len reports the number of cached rows.
func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM asset_cache`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
