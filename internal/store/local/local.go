// Package local persists statuses to a JSON file, serving as the fallback
// status store when no network backend is configured.
//
// The current format is a versioned payload holding [itemId, status] pairs.
// Earlier releases stored a plain array of purchased item ids in a separate
// file; that legacy file is detected on open, upgraded (every listed id
// becomes purchased), and removed. Corrupt JSON in either file is treated as
// empty state rather than an error.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wishlist/internal/core"
	"wishlist/internal/store"
)

const (
	// FormatVersion identifies the current on-disk payload format.
	FormatVersion = 2

	stateFileName  = "statuses.v2.json"
	legacyFileName = "purchased.json"
)

type payload struct {
	Version  int         `json:"version"`
	Statuses [][2]string `json:"statuses"`
}

type Store struct {
	mu       sync.Mutex
	path     string
	statuses map[string]core.Status
}

var _ store.StatusStore = (*Store)(nil)

// Open loads (or creates) the status file under dir, performing the legacy
// upgrade if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	s := &Store{
		path:     filepath.Join(dir, stateFileName),
		statuses: make(map[string]core.Status),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	if err := s.migrateLegacy(filepath.Join(dir, legacyFileName)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		// Corrupt state is empty state.
		return nil
	}
	for _, pair := range p.Statuses {
		status, err := core.ParseStatus(pair[1])
		if err != nil || status == core.StatusUnset {
			continue
		}
		s.statuses[pair[0]] = status
	}
	return nil
}

// migrateLegacy upgrades the old purchased-only id list if the legacy file
// exists, then removes it. Existing entries in the current format win.
func (s *Store) migrateLegacy(legacyPath string) error {
	b, err := os.ReadFile(legacyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read legacy state file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(b, &ids); err == nil {
		for _, id := range ids {
			if _, exists := s.statuses[id]; !exists {
				s.statuses[id] = core.StatusPurchased
			}
		}
		if err := s.save(); err != nil {
			return err
		}
	}
	if err := os.Remove(legacyPath); err != nil {
		return fmt.Errorf("remove legacy state file: %w", err)
	}
	return nil
}

// save writes the whole state; callers hold the mutex (or are still
// single-threaded inside Open).
func (s *Store) save() error {
	p := payload{Version: FormatVersion, Statuses: make([][2]string, 0, len(s.statuses))}
	for id, status := range s.statuses {
		p.Statuses = append(p.Statuses, [2]string{id, string(status)})
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func (s *Store) ListStatuses(_ context.Context) (map[string]core.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]core.Status, len(s.statuses))
	for id, status := range s.statuses {
		out[id] = status
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
	return s.save()
}

func (s *Store) DeleteStatus(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.statuses, itemID)
	return s.save()
}

func (s *Store) DeleteAllStatuses(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = make(map[string]core.Status)
	return s.save()
}
