package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// collectionsSchema holds one row per collection key; the full JSON
// document lives in the data column.
const collectionsSchema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore persists collections as rows in a single SQLite database
// at <dataDir>/botanica.db. Same contract as JSONStore; SQLite gives
// atomic replacement for free via its transaction journal.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (or creates) the database and ensures the schema.
func NewSQLiteStore(dataDir string, logger *zap.Logger) (*SQLiteStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}

	dbPath := filepath.Join(dataDir, "botanica.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if _, err := db.Exec(collectionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load reads the document for key into v. A missing row or corrupt
// document leaves v untouched.
func (s *SQLiteStore) Load(key string, v any) {
	var data string
	err := s.db.QueryRow("SELECT data FROM collections WHERE key = ?", key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("collection not yet persisted", zap.String("key", key))
		} else {
			s.logger.Warn("reading collection failed, starting empty",
				zap.String("key", key), zap.Error(err))
		}
		return
	}

	if err := json.Unmarshal([]byte(data), v); err != nil {
		s.logger.Warn("corrupt collection document, starting empty",
			zap.String("key", key), zap.Error(err))
	}
}

// Save upserts the document for key.
func (s *SQLiteStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO collections (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database. Idempotent.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
