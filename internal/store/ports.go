// Package store declares the outbound ports for the catalog and status
// collaborators. The core is storage-agnostic: any durable key-value mapping
// satisfies StatusStore, and upsert/delete are idempotent by key.
package store

import (
	"context"
	"errors"

	"wishlist/internal/core"
)

// ErrCategoryNotFound is returned by AddItem when the target category does
// not exist.
var ErrCategoryNotFound = errors.New("category not found")

type (
	// CatalogStore is the durable mapping from category to ordered items.
	CatalogStore interface {
		// ListCategories returns all categories pre-joined with their
		// items, in stored sort order.
		ListCategories(ctx context.Context) ([]core.Category, error)
		// AddCategory appends a category at the end of the display order.
		AddCategory(ctx context.Context, c core.Category) error
		// AddItem appends an item to the named category.
		AddItem(ctx context.Context, categoryID string, item core.Item) error
	}

	// StatusStore is the durable mapping from item id to status. Absence of
	// a key means unset; the unset case never crosses this boundary.
	StatusStore interface {
		ListStatuses(ctx context.Context) (map[string]core.Status, error)
		UpsertStatus(ctx context.Context, itemID string, status core.Status) error
		DeleteStatus(ctx context.Context, itemID string) error
		DeleteAllStatuses(ctx context.Context) error
	}
)
