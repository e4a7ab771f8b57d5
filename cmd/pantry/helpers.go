// Shared helpers for pantry CLI commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mesh-intelligence/pantry/internal/postgres"
	"github.com/mesh-intelligence/pantry/internal/sqlite"
	"github.com/mesh-intelligence/pantry/pkg/store"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// attachBackend builds the configured backend and attaches it. The
// caller must defer backend.Detach().
func attachBackend() (types.Backend, error) {
	backendName := configBackend
	if backendName == "" {
		backendName = defaultBackend
	}

	cfg := types.Config{
		Backend: backendName,
		DSN:     configDSN,
	}

	var backend types.Backend
	switch backendName {
	case types.BackendSQLite:
		dataDir, err := resolveDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dataDir
		backend = sqlite.NewBackend()
	case types.BackendPostgres:
		backend = postgres.NewBackend()
	default:
		return nil, fmt.Errorf("unknown backend %q (valid: %s, %s)",
			backendName, types.BackendSQLite, types.BackendPostgres)
	}

	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// newStore builds a Store over the backend with a CLI logger.
func newStore(backend types.Backend) *store.Store {
	return store.New(backend, store.WithLogger(log.New(os.Stderr, "pantry: ", 0)))
}

// openStore attaches the backend and returns a refreshed store over it.
// The caller must defer backend.Detach().
func openStore(ctx context.Context) (*store.Store, types.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	st := newStore(backend)
	if err := st.Refresh(ctx); err != nil {
		backend.Detach()
		return nil, nil, err
	}
	return st, backend, nil
}

// resolveItemID matches id against the store's items, accepting a
// unique ID prefix. Returns ErrNotFound when nothing matches and an
// error naming the ambiguity when more than one item matches.
func resolveItemID(st *store.Store, id string) (string, error) {
	var match string
	for _, it := range st.Items() {
		if it.ItemID == id {
			return it.ItemID, nil
		}
		if strings.HasPrefix(it.ItemID, id) {
			if match != "" {
				return "", fmt.Errorf("ambiguous item ID %q", id)
			}
			match = it.ItemID
		}
	}
	if match == "" {
		return "", types.ErrNotFound
	}
	return match, nil
}

// shortID truncates an item ID to its first 8 characters for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// isNotFound reports whether the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
