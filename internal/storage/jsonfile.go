package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// JSONStore keeps each collection in <dataDir>/<key>.json. Writes use
// the temp-file, fsync, rename pattern so a crash mid-write never
// leaves a truncated document behind.
type JSONStore struct {
	dataDir string
	logger  *zap.Logger
}

// NewJSONStore creates a JSONStore rooted at dataDir, creating the
// directory if it does not exist.
func NewJSONStore(dataDir string, logger *zap.Logger) (*JSONStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}
	return &JSONStore{dataDir: dataDir, logger: logger}, nil
}

func (s *JSONStore) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// Load reads the document for key into v. Missing files are normal on
// first run and logged at debug only; corrupt documents are logged at
// warn and skipped, leaving v at its zero value.
func (s *JSONStore) Load(key string, v any) {
	path := s.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("collection not yet persisted", zap.String("key", key))
		} else {
			s.logger.Warn("reading collection failed, starting empty",
				zap.String("key", key), zap.Error(err))
		}
		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("corrupt collection document, starting empty",
			zap.String("key", key), zap.Error(err))
	}
}

// Save atomically replaces the document for key with the serialized v.
func (s *JSONStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	path := s.path(key)
	tmp, err := os.CreateTemp(s.dataDir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *JSONStore) Close() error {
	return nil
}
