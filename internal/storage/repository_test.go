package storage

import (
	"context"
	"path/filepath"
	"testing"

	"wishlist/internal/core"
	"wishlist/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "wishlist.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSeedIfEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SeedIfEmpty(ctx, store.SeedCatalog()); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	// Second run must not duplicate.
	if err := repo.SeedIfEmpty(ctx, store.SeedCatalog()); err != nil {
		t.Fatalf("SeedIfEmpty rerun: %v", err)
	}

	cats, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != len(store.SeedCatalog()) {
		t.Errorf("got %d categories, want %d", len(cats), len(store.SeedCatalog()))
	}
	if cats[0].ID != "washroom" {
		t.Errorf("sort order not preserved, first category %q", cats[0].ID)
	}
	if len(cats[1].Items) != 4 {
		t.Errorf("sideboard should carry 4 items, got %d", len(cats[1].Items))
	}
	if cats[1].Items[0].ID != "lanesund" || !cats[1].Items[0].IsPreferred {
		t.Errorf("item order/flags lost: %+v", cats[1].Items[0])
	}
	if len(cats[1].Items[0].Notes) != 3 {
		t.Errorf("notes should round-trip through JSON column, got %v", cats[1].Items[0].Notes)
	}
}

func TestAddCategoryAndItemAppendOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, c := range []core.Category{
		{ID: "first", Name: "First", Icon: "1"},
		{ID: "second", Name: "Second", Icon: "2"},
	} {
		if err := repo.AddCategory(ctx, c); err != nil {
			t.Fatalf("AddCategory(%s): %v", c.ID, err)
		}
	}
	if err := repo.AddItem(ctx, "first", core.Item{ID: "a", Name: "a", Price: 10}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.AddItem(ctx, "first", core.Item{ID: "b", Name: "b"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := repo.AddItem(ctx, "nope", core.Item{ID: "c", Name: "c"}); err == nil {
		t.Error("adding to unknown category should fail")
	}

	cats, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cats[0].ID != "first" || cats[1].ID != "second" {
		t.Errorf("category append order lost: %s, %s", cats[0].ID, cats[1].ID)
	}
	if len(cats[0].Items) != 2 || cats[0].Items[0].ID != "a" || cats[0].Items[1].ID != "b" {
		t.Errorf("item append order lost: %+v", cats[0].Items)
	}
	if cats[0].Items[1].Price != 0 {
		t.Errorf("missing price should load as zero, got %v", cats[0].Items[1].Price)
	}
	if len(cats[1].Items) != 0 {
		t.Errorf("empty category should list no items, got %+v", cats[1].Items)
	}
}

func TestStatusLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertStatus(ctx, "a", core.StatusShortlisted); err != nil {
		t.Fatalf("UpsertStatus: %v", err)
	}
	// Upsert by key: a second write overwrites, never duplicates.
	if err := repo.UpsertStatus(ctx, "a", core.StatusPurchased); err != nil {
		t.Fatalf("UpsertStatus overwrite: %v", err)
	}
	if err := repo.UpsertStatus(ctx, "b", core.StatusShortlisted); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpsertStatus(ctx, "c", core.Status("bogus")); err == nil {
		t.Error("invalid status must be rejected before reaching SQL")
	}

	m, err := repo.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses: %v", err)
	}
	if len(m) != 2 || m["a"] != core.StatusPurchased {
		t.Errorf("unexpected statuses %v", m)
	}

	if err := repo.DeleteStatus(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteStatus(ctx, "a"); err != nil {
		t.Errorf("delete should be idempotent: %v", err)
	}

	if err := repo.DeleteAllStatuses(ctx); err != nil {
		t.Fatal(err)
	}
	m, _ = repo.ListStatuses(ctx)
	if len(m) != 0 {
		t.Errorf("expected empty statuses after delete-all, got %v", m)
	}
}
