package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wishlist/internal/core"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.UpsertStatus(ctx, "vesken", core.StatusShortlisted); err != nil {
		t.Fatalf("UpsertStatus: %v", err)
	}
	if err := s.UpsertStatus(ctx, "besta", core.StatusPurchased); err != nil {
		t.Fatalf("UpsertStatus: %v", err)
	}
	if err := s.DeleteStatus(ctx, "missing"); err != nil {
		t.Fatalf("DeleteStatus on absent key: %v", err)
	}

	// Reopen and compare by key-value set; pair order in the file is not
	// significant.
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	m, err := reopened.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses: %v", err)
	}
	want := map[string]core.Status{
		"vesken": core.StatusShortlisted,
		"besta":  core.StatusPurchased,
	}
	if len(m) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(m), len(want), m)
	}
	for id, status := range want {
		if m[id] != status {
			t.Errorf("status[%q] = %q, want %q", id, m[id], status)
		}
	}
}

func TestLegacyMigration(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, legacyFileName)
	if err := os.WriteFile(legacy, []byte(`["a","b"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	m, _ := s.ListStatuses(context.Background())
	if m["a"] != core.StatusPurchased || m["b"] != core.StatusPurchased {
		t.Errorf("legacy ids should load as purchased, got %v", m)
	}

	if _, err := os.Stat(legacy); !os.IsNotExist(err) {
		t.Error("legacy file should be removed after migration")
	}
	if _, err := os.Stat(filepath.Join(dir, stateFileName)); err != nil {
		t.Errorf("migrated state should be persisted in the new format: %v", err)
	}

	// A second open must not resurrect anything.
	again, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	m, _ = again.ListStatuses(context.Background())
	if len(m) != 2 {
		t.Errorf("expected 2 migrated entries after reopen, got %v", m)
	}
}

func TestLegacyDoesNotOverrideCurrent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertStatus(ctx, "a", core.StatusShortlisted); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, legacyFileName), []byte(`["a","b"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	reopened, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := reopened.ListStatuses(ctx)
	if m["a"] != core.StatusShortlisted {
		t.Errorf("current-format entry must win over legacy, got %q", m["a"])
	}
	if m["b"] != core.StatusPurchased {
		t.Errorf("legacy-only entry should migrate, got %q", m["b"])
	}
}

func TestCorruptStateIsEmptyState(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("corrupt state must not fail Open: %v", err)
	}
	m, _ := s.ListStatuses(context.Background())
	if len(m) != 0 {
		t.Errorf("corrupt state should load empty, got %v", m)
	}
}

func TestInvalidValuesDroppedOnLoad(t *testing.T) {
	dir := t.TempDir()
	raw := `{"version":2,"statuses":[["a","purchased"],["b","maybe"],["c",""]]}`
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := s.ListStatuses(context.Background())
	if len(m) != 1 || m["a"] != core.StatusPurchased {
		t.Errorf("invalid entries should be dropped during ingestion, got %v", m)
	}
}
