// Shared helpers for ticklist commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/ticklab/ticklist/internal/store"
	"github.com/ticklab/ticklist/pkg/types"
)

// openStore resolves the data directory, builds the configured backend,
// and wraps it in a store. The caller must Close the returned store.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return st, nil
}

// parseID parses a task id argument. Ids are non-negative integers;
// anything else is a usage error.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
