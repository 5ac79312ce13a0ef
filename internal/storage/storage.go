// Package storage implements key-value persistence for the Botanica
// collections. Each collection is a JSON document stored under its own
// key; every repository mutation writes the full collection back
// (write-through, no batching).
//
// Loads fail soft: a missing or corrupt document yields an empty
// collection instead of an error. Saves return errors but callers are
// expected to continue on the in-memory state; data simply will not
// survive a restart. Concurrent writers against the same data dir are
// not coordinated: last writer wins.
package storage

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/botanica-home/botanica/pkg/types"
)

// Collection keys. Each key maps to one independently persisted
// JSON document.
const (
	KeyPlants          = "plants"
	KeyWishlist        = "wishlist"
	KeyReminders       = "reminders"
	KeyWateringHistory = "watering_history"
)

// Store persists JSON-serializable collections by key.
type Store interface {
	// Load reads the collection stored under key into v. A missing or
	// unparseable document leaves v untouched, so callers keep the
	// empty collection they initialized.
	Load(key string, v any)

	// Save serializes v and stores it under key, replacing any
	// previous document atomically.
	Save(key string, v any) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open creates the Store described by cfg, creating the data directory
// if needed. The logger must not be nil; pass zap.NewNop() to discard.
func Open(cfg types.Config, logger *zap.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONStore(cfg.DataDir, logger)
	case types.BackendSQLite:
		return NewSQLiteStore(cfg.DataDir, logger)
	default:
		return nil, fmt.Errorf("open store: %w", types.ErrBackendUnknown)
	}
}
