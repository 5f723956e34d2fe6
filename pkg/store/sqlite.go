package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

const sqliteFile = "chrono.db"

type sqlitePersistence struct {
	db  *sql.DB
	dir string
	log *log.Logger
}

func newSQLite(dir string, logger *log.Logger) (*sqlitePersistence, error) {
	if dir == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFile))
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init sqlite schema: %w", err)
	}
	return &sqlitePersistence{db: db, dir: dir, log: logger}, nil
}

func (s *sqlitePersistence) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, nil
}

func (s *sqlitePersistence) Write(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, data)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *sqlitePersistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		s.log.Warn("store: list keys", "err", err)
		return keys
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			s.log.Warn("store: scan key", "err", err)
			continue
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn("store: list keys", "err", err)
	}
	return keys
}

// Watch reports every change to the database file as a full refresh; the
// file does not tell which key moved.
func (s *sqlitePersistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchDir(ctx, s.dir, func(string) string { return "" }, s.log)
}

func (s *sqlitePersistence) Close() error {
	return s.db.Close()
}
