// Item operations for the SQLite backend: the four round trips the
// optimistic store reconciles against.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// FetchAll returns every pantry item ordered by created_at descending
// (newest first).
func (b *Backend) FetchAll(ctx context.Context) ([]types.Item, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT item_id, name, status, created_at FROM pantry_items ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	defer rows.Close()

	items := []types.Item{}
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// Create inserts a new item with status full. The backend assigns a
// UUID v7 ItemID and the creation timestamp, and returns the stored
// row. Returns ErrInvalidName if name is empty.
func (b *Backend) Create(ctx context.Context, name string) (types.Item, error) {
	if name == "" {
		return types.Item{}, types.ErrInvalidName
	}

	db, err := b.conn()
	if err != nil {
		return types.Item{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return types.Item{}, fmt.Errorf("generating UUID v7: %w", err)
	}

	item := types.Item{
		ItemID:    id.String(),
		Name:      name,
		Status:    types.StatusFull,
		CreatedAt: time.Now().UTC(),
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO pantry_items (item_id, name, status, created_at) VALUES (?, ?, ?, ?)",
		item.ItemID, item.Name, item.Status, item.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("inserting item: %w", err)
	}
	return item, nil
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

	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		"UPDATE pantry_items SET status = ? WHERE item_id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	if n == 0 {
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

	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		"DELETE FROM pantry_items WHERE item_id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// hydrateItem converts the current row into a types.Item.
func hydrateItem(rows *sql.Rows) (types.Item, error) {
	var it types.Item
	var createdAt string
	if err := rows.Scan(&it.ItemID, &it.Name, &it.Status, &createdAt); err != nil {
		return types.Item{}, err
	}
	var err error
	it.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.Item{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return it, nil
}
