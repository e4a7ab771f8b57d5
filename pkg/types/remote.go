package types

import (
	"context"
	"errors"
)

// Remote is the narrow interface to the persistent pantry_items table.
// The store depends only on this interface, so the lifecycle and
// ordering logic can be exercised against an in-memory fake.
type Remote interface {
	// FetchAll returns every item, newest first (created_at descending).
	FetchAll(ctx context.Context) ([]Item, error)

	// Create inserts a new item with the given name and status full,
	// and returns the stored row with its backend-assigned ItemID and
	// CreatedAt. Returns ErrInvalidName if name is empty.
	Create(ctx context.Context, name string) (Item, error)

	// UpdateStatus sets the status of the item with the given ID.
	// Returns ErrNotFound if no item has that ID.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Delete removes the item with the given ID.
	// Returns ErrNotFound if no item has that ID.
	Delete(ctx context.Context, id string) error
}

// Backend is a Remote with an attach/detach lifecycle. Callers attach
// with a Config, perform item operations, and detach when done.
type Backend interface {
	Remote

	// Attach connects the backend to the store described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, item operations return ErrBackendDetached.
	Detach() error
}

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Item operation errors.
var (
	ErrNotFound      = errors.New("item not found")
	ErrInvalidID     = errors.New("invalid item ID")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidStatus = errors.New("invalid status value")
)
