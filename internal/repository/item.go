// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"itemapi/internal/model"
)

// ItemRepository defines data access for items using SQL queries only.
// No business logic here — strictly persistence operations. Absent rows are
// reported as sql.ErrNoRows by implementations, never as a domain error.
type ItemRepository interface {
	// Create inserts a new item. The id is assigned by the store;
	// the returned record is the full stored row.
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// FindByID returns an item by its ID.
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// List returns up to limit items in store-native order.
	List(ctx context.Context, limit int) ([]model.Item, error)

	// Update applies the non-nil fields of patch to the stored row and returns
	// the resulting record. An empty patch issues no write at all; the current
	// row is fetched and returned unchanged.
	Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)

	// Delete removes an item by ID and returns the number of rows removed.
	// Deleting a missing id yields 0, not an error.
	Delete(ctx context.Context, id string) (int64, error)
}
