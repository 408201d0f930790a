// Package store owns the task collection. Every operation loads the full
// collection from the backend, applies one mutation in memory, and, when
// it mutates, writes the full collection back.
package store

import "github.com/ticklab/ticklist/pkg/types"

// Backend persists the task collection as a whole. Load returns the
// collection in storage order; Persist replaces the stored collection
// with exactly the given one, slice order becoming storage order.
type Backend interface {
	// Load reads the full collection. A missing, unreadable, or
	// malformed backing file is a *types.StorageError; the store
	// downgrades every Load failure to an empty collection.
	Load() ([]types.Task, error)

	// Persist rewrites the backing store with the given collection.
	Persist(tasks []types.Task) error

	// Location returns the resolved path of the backing file.
	Location() string

	// Close releases backend resources. Idempotent.
	Close() error
}

// openBackend builds the backend selected by cfg.
func openBackend(cfg types.Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		return openSQLite(cfg.DataDir)
	default:
		return openJSON(cfg.DataDir), nil
	}
}
