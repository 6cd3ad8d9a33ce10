// Package reconcile keeps an in-process status cache consistent with the
// remote status store under optimistic, fire-and-forget writes.
//
// The cache is the authoritative view: every mutation commits locally first,
// synchronously, under one mutex, and the remote write runs in a detached
// goroutine whose failure is logged and never rolled back. Two concurrent
// writers to the same item race on the remote copy exactly as two browser
// tabs would; last local write wins and no stronger consistency is provided.
package reconcile

import (
	"context"
	"sync"
	"time"

	"wishlist/internal/core"
	"wishlist/internal/log"
	"wishlist/internal/store"
)

// writeTimeout bounds each detached store write. The caller's context is not
// used: the write must outlive the HTTP request that triggered it.
const writeTimeout = 10 * time.Second

// EventSink receives change notifications after a successful local commit.
// Sink failures are logged only, matching the store write policy.
type EventSink interface {
	StatusChanged(ctx context.Context, itemID string, status core.Status) error
	StatusesReset(ctx context.Context) error
}

type Reconciler struct {
	mu       sync.Mutex
	statuses map[string]core.Status

	store  store.StatusStore
	events EventSink // optional
	logger *log.Logger

	wg sync.WaitGroup
}

// New builds a reconciler over the given status store. sink may be nil.
func New(st store.StatusStore, sink EventSink, logger *log.Logger) *Reconciler {
	return &Reconciler{
		statuses: make(map[string]core.Status),
		store:    st,
		events:   sink,
		logger:   logger.WithComponent(log.ComponentReconcile),
	}
}

// InitFromRemote replaces the cache wholesale with a fresh snapshot from the
// store. Entries with invalid values are dropped during ingestion. Used once
// at startup; a fetch failure here is the only error this type surfaces.
func (r *Reconciler) InitFromRemote(ctx context.Context) error {
	remote, err := r.store.ListStatuses(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]core.Status, len(remote))
	for id, status := range remote {
		if !status.Valid() {
			r.logger.WarnContext(ctx, "Dropping invalid status from store",
				log.FieldItemID, id, log.FieldStatus, string(status))
			continue
		}
		next[id] = status
	}

	r.mu.Lock()
	r.statuses = next
	r.mu.Unlock()
	return nil
}

// SetStatus applies the toggle semantics and returns the resulting status:
//
//	unset, or equal to current  -> entry removed (toggle-off), delete issued
//	otherwise                   -> overwritten, upsert issued
//
// The local commit is synchronous; the store write is fire-and-forget.
func (r *Reconciler) SetStatus(ctx context.Context, itemID string, status core.Status) core.Status {
	r.mu.Lock()
	current := r.statuses[itemID]
	result := status
	if status == core.StatusUnset || status == current {
		delete(r.statuses, itemID)
		result = core.StatusUnset
	} else {
		r.statuses[itemID] = status
	}
	r.mu.Unlock()

	r.forward(itemID, result)
	return result
}

// ResetAll clears the cache and issues a delete-all to the store.
func (r *Reconciler) ResetAll(ctx context.Context) {
	r.mu.Lock()
	r.statuses = make(map[string]core.Status)
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := r.store.DeleteAllStatuses(ctx); err != nil {
			r.logger.ErrorContext(ctx, "Status store reset failed; local state stands",
				log.FieldOperation, log.OpReset, log.FieldError, err.Error())
		}
		if r.events != nil {
			if err := r.events.StatusesReset(ctx); err != nil {
				r.logger.WarnContext(ctx, "Reset event publish failed",
					log.FieldError, err.Error())
			}
		}
	}()
}

// StatusOf returns the cached status for an item; absent means unset.
func (r *Reconciler) StatusOf(itemID string) core.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statuses[itemID]
}

// Snapshot returns a copy of the cache for readers.
func (r *Reconciler) Snapshot() map[string]core.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]core.Status, len(r.statuses))
	for id, status := range r.statuses {
		out[id] = status
	}
	return out
}

// Close waits for in-flight detached writes to finish.
func (r *Reconciler) Close() {
	r.wg.Wait()
}

func (r *Reconciler) forward(itemID string, status core.Status) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		var err error
		op := log.OpUpsert
		if status == core.StatusUnset {
			op = log.OpDelete
			err = r.store.DeleteStatus(ctx, itemID)
		} else {
			err = r.store.UpsertStatus(ctx, itemID, status)
		}
		if err != nil {
			r.logger.ErrorContext(ctx, "Status store write failed; local state stands",
				log.FieldOperation, op,
				log.FieldItemID, itemID,
				log.FieldStatus, string(status),
				log.FieldError, err.Error())
		}

		if r.events != nil {
			if err := r.events.StatusChanged(ctx, itemID, status); err != nil {
				r.logger.WarnContext(ctx, "Status event publish failed",
					log.FieldItemID, itemID, log.FieldError, err.Error())
			}
		}
	}()
}
