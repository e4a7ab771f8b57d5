// Package postgres implements the pantry backend against a PostgreSQL
// server, the deployment where pantry_items lives on a remote host.
// IDs and creation timestamps are generated server-side.
package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Compile-time interface check: Backend must implement types.Backend.
var _ types.Backend = (*Backend)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pantry_items (
    item_id    uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name       text NOT NULL,
    status     text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now()
)`

// Backend implements the Backend interface over a pgx connection pool.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	pool     *pgxpool.Pool
}

// NewBackend creates a new PostgreSQL backend instance. The backend is
// not attached; call Attach with a Config carrying a DSN.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach dials Config.DSN and ensures the pantry_items table exists.
// Returns ErrAlreadyAttached if called while already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, config.DSN)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return fmt.Errorf("ensuring pantry_items table: %w", err)
	}

	b.pool = pool
	b.attached = true
	return nil
}

// Detach closes the connection pool. Idempotent: multiple calls
// succeed. After Detach, item operations return ErrBackendDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.pool != nil {
		b.pool.Close()
		b.pool = nil
	}

	b.attached = false
	return nil
}

// conn returns the open pool, or ErrBackendDetached.
func (b *Backend) conn() (*pgxpool.Pool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	return b.pool, nil
}

// FetchAll returns every pantry item ordered by created_at descending
// (newest first).
func (b *Backend) FetchAll(ctx context.Context) ([]types.Item, error) {
	pool, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx,
		"SELECT item_id::text, name, status, created_at FROM pantry_items ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	defer rows.Close()

	items := []types.Item{}
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Status, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// Create inserts a row with status full and returns it as stored, with
// the server-generated ID and timestamp. Returns ErrInvalidName if name
// is empty.
func (b *Backend) Create(ctx context.Context, name string) (types.Item, error) {
	if name == "" {
		return types.Item{}, types.ErrInvalidName
	}

	pool, err := b.conn()
	if err != nil {
		return types.Item{}, err
	}

	var it types.Item
	err = pool.QueryRow(ctx,
		`INSERT INTO pantry_items (name, status) VALUES ($1, $2)
		 RETURNING item_id::text, name, status, created_at`,
		name, types.StatusFull,
	).Scan(&it.ItemID, &it.Name, &it.Status, &it.CreatedAt)
	if err != nil {
		return types.Item{}, fmt.Errorf("inserting item: %w", err)
	}
	return it, nil
}

// UpdateStatus sets the status of the item with the given ID. Returns
// ErrNotFound if no row matched and ErrInvalidStatus for values outside
// the lifecycle enum.
func (b *Backend) UpdateStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if !types.ValidStatus(status) {
		return types.ErrInvalidStatus
	}

	pool, err := b.conn()
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx,
		"UPDATE pantry_items SET status = $1 WHERE item_id = $2::uuid", status, id,
	)
	if err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the item with the given ID. Returns ErrNotFound if no
// row matched.
func (b *Backend) Delete(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	pool, err := b.conn()
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx,
		"DELETE FROM pantry_items WHERE item_id = $1::uuid", id,
	)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}
