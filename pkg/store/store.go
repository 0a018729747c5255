// Package store provides the persistence gateway for items.
//
// The gateway abstracts storage backends:
//   - SQLite for an embedded database (default)
//   - PostgreSQL for a shared database
//   - in-memory storage for tests and throwaway runs
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/getitemd/itemd/pkg/item"
)

// Common errors.
var (
	ErrNotFound = errors.New("item not found")
)

// Backend represents a storage backend type.
type Backend string

const (
	// BackendSQLite uses an embedded SQLite database.
	BackendSQLite Backend = "sqlite"
	// BackendPostgres uses a PostgreSQL database.
	BackendPostgres Backend = "postgres"
	// BackendMemory uses in-memory storage (no persistence).
	BackendMemory Backend = "memory"
)

// Config holds store configuration.
type Config struct {
	// Backend specifies the storage backend to use.
	Backend Backend `json:"backend" yaml:"backend"`

	// DSN is the data source name. For SQLite this is the database file
	// path; for PostgreSQL a connection string. Ignored by the memory
	// backend.
	DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		Backend: BackendSQLite,
		DSN:     "itemd.db",
	}
}

// ItemStore is the persistence gateway for the item resource. Each call is
// one storage operation; a failed operation leaves no partial state visible
// to subsequent reads.
type ItemStore interface {
	// List returns items in insertion order, skipping the first skip
	// records. An empty store yields an empty slice, not nil.
	List(ctx context.Context, skip int) ([]*item.Item, error)

	// Get returns the item with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*item.Item, error)

	// Create persists a new item and assigns its id.
	Create(ctx context.Context, it *item.Item) error

	// Update persists all fields of an existing item. Returns ErrNotFound
	// if the id no longer exists.
	Update(ctx context.Context, it *item.Item) error

	// Delete removes an item permanently. Returns ErrNotFound if the id
	// does not exist; deletion is not idempotent.
	Delete(ctx context.Context, id int64) error

	// Close releases the underlying storage resources.
	Close() error
}

// Open constructs the store for cfg and runs schema initialization before
// returning, so the service never accepts a request against an
// uninitialized schema.
func Open(cfg Config) (ItemStore, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite, BackendPostgres, "":
		return OpenGorm(cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
