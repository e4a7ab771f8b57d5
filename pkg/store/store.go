// Package store implements the optimistic in-memory mirror of the
// pantry_items table. The Store applies user mutations locally first
// and reconciles with the remote afterwards; the remote store stays the
// source of truth and wins on the next Refresh.
package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Store holds the local ordered item collection and a loading flag.
// All mutation goes through the exported methods; the collection is
// guarded so a Store can be shared across goroutines.
type Store struct {
	mu      sync.RWMutex
	remote  types.Remote
	logger  *log.Logger
	items   []types.Item
	loading bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report remote failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store backed by the given remote. The store starts
// empty; call Refresh to load the remote collection.
func New(remote types.Remote, opts ...Option) *Store {
	s := &Store{
		remote: remote,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh replaces the local collection with the remote's, newest
// first. On failure the prior collection is left untouched, the error
// is logged and returned. The loading flag is up for the whole call,
// regardless of outcome.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.remote.FetchAll(ctx)
	if err != nil {
		err = fmt.Errorf("fetching items: %w", err)
		s.logger.Printf("refresh: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add creates an item with the given name and prepends the stored row
// to the local collection. A name that is empty or whitespace-only is
// silently declined: no remote call is made and nil is returned. There
// is no optimistic insert, so a failed create leaves the collection
// unchanged; the error is logged and returned.
func (s *Store) Add(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	item, err := s.remote.Create(ctx, name)
	if err != nil {
		err = fmt.Errorf("creating item %q: %w", name, err)
		s.logger.Printf("add: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = append([]types.Item{item}, s.items...)
	s.mu.Unlock()
	return nil
}

// SetStatus replaces the matching item's status locally before the
// remote update is issued. A remote failure is logged and otherwise
// ignored: the optimistic change stays in place until the next Refresh
// restores the remote's view. The remote call is issued even when no
// local item matches; the remote is authoritative on what exists.
func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ItemID == id {
			s.items[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	if err := s.remote.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Printf("set status %s=%s: %v", id, status, err)
	}
	return nil
}

// Remove drops the matching item from the local collection before the
// remote delete is issued. Remote failure handling matches SetStatus:
// logged, not rolled back, nil returned.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ItemID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if err := s.remote.Delete(ctx, id); err != nil {
		s.logger.Printf("remove %s: %v", id, err)
	}
	return nil
}

// Cycle advances the matching item one lifecycle step via NextStatus
// and issues the remote update through SetStatus. The returned status
// is the one the item advanced to; ok is false when no local item has
// the given ID, in which case no remote call is made.
func (s *Store) Cycle(ctx context.Context, id string) (next string, ok bool) {
	s.mu.RLock()
	var current string
	for _, it := range s.items {
		if it.ItemID == id {
			current, ok = it.Status, true
			break
		}
	}
	s.mu.RUnlock()
	if !ok {
		return "", false
	}

	next = types.NextStatus(current)
	_ = s.SetStatus(ctx, id, next)
	return next, true
}

// Items returns a copy of the local collection in fetch order (newest
// first).
func (s *Store) Items() []types.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Item, len(s.items))
	copy(out, s.items)
	return out
}

// DisplayItems returns the collection in display order: out-of-stock
// items grouped after everything else, both groups in fetch order.
func (s *Store) DisplayItems() []types.Item {
	return types.DisplayOrder(s.Items())
}

// Len returns the number of items held locally.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Loading reports whether a Refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
