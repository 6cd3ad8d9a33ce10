// Package memory provides an in-process store used as the default backend
// and in tests. All operations copy on the way out so callers never share
// the internal slices and maps.
package memory

import (
	"context"
	"fmt"
	"sync"

	"wishlist/internal/core"
	"wishlist/internal/store"
)

type Store struct {
	mu         sync.Mutex
	categories []core.Category
	statuses   map[string]core.Status
}

var (
	_ store.CatalogStore = (*Store)(nil)
	_ store.StatusStore  = (*Store)(nil)
)

func New(seed []core.Category) *Store {
	s := &Store{statuses: make(map[string]core.Status)}
	for _, c := range seed {
		s.categories = append(s.categories, copyCategory(c))
	}
	return s
}

// NewSeeded returns a store populated with the built-in catalog.
func NewSeeded() *Store {
	return New(store.SeedCatalog())
}

func (s *Store) ListCategories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, copyCategory(c))
	}
	return out, nil
}

func (s *Store) AddCategory(_ context.Context, c core.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.ID == c.ID {
			return fmt.Errorf("category %q already exists", c.ID)
		}
	}
	s.categories = append(s.categories, copyCategory(c))
	return nil
}

func (s *Store) AddItem(_ context.Context, categoryID string, item core.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		for _, existing := range s.categories[i].Items {
			if existing.ID == item.ID {
				return fmt.Errorf("item %q already exists", item.ID)
			}
		}
		s.categories[i].Items = append(s.categories[i].Items, copyItem(item))
		return nil
	}
	return fmt.Errorf("category %q: %w", categoryID, store.ErrCategoryNotFound)
}

func (s *Store) ListStatuses(_ context.Context) (map[string]core.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]core.Status, len(s.statuses))
	for id, st := range s.statuses {
		out[id] = st
	}
	return out, nil
}

func (s *Store) UpsertStatus(_ context.Context, itemID string, status core.Status) error {
	if !status.Valid() {
		return core.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[itemID] = status
	return nil
}

func (s *Store) DeleteStatus(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.statuses, itemID)
	return nil
}

func (s *Store) DeleteAllStatuses(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = make(map[string]core.Status)
	return nil
}

func copyCategory(c core.Category) core.Category {
	out := c
	out.Items = make([]core.Item, len(c.Items))
	for i, item := range c.Items {
		out.Items[i] = copyItem(item)
	}
	return out
}

func copyItem(i core.Item) core.Item {
	out := i
	out.Notes = append([]string(nil), i.Notes...)
	return out
}
