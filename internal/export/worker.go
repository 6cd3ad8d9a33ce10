package export

import (
	"context"
	"fmt"
	"time"

	"wishlist/internal/amqp"
	"wishlist/internal/core"
	"wishlist/internal/log"
	"wishlist/internal/store"
)

// Worker consumes status events and exports completed purchases. Everything
// except a purchase (shortlist, toggle-off, reset) is acknowledged and
// skipped: the sheet is an append-only log, not a mirror of current state.
type Worker struct {
	catalog  store.CatalogStore
	appender Appender
	logger   *log.Logger
}

func NewWorker(catalog store.CatalogStore, appender Appender, logger *log.Logger) *Worker {
	return &Worker{
		catalog:  catalog,
		appender: appender,
		logger:   logger.WithComponent(log.ComponentWorker),
	}
}

// HandleStatusEvent processes one event from the queue. Returning an error
// requeues the delivery.
func (w *Worker) HandleStatusEvent(ctx context.Context, ev *amqp.StatusEvent) error {
	if ev.Reset {
		w.logger.InfoContext(ctx, "Statuses reset; nothing to export")
		return nil
	}
	if ev.Status != core.StatusPurchased {
		w.logger.DebugContext(ctx, "Skipping non-purchase event",
			log.FieldItemID, ev.ItemID, log.FieldStatus, string(ev.Status))
		return nil
	}

	item, category, err := w.findItem(ctx, ev.ItemID)
	if err != nil {
		return err
	}

	when := ev.Timestamp
	if when.IsZero() {
		when = time.Now()
	}

	row := PurchaseRow{
		When:     when,
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: category,
	}
	if err := w.appender.AppendPurchase(ctx, row); err != nil {
		return fmt.Errorf("append purchase: %w", err)
	}

	w.logger.InfoContext(ctx, "Purchase exported",
		log.FieldItemID, item.ID, log.FieldOperation, log.OpAppend)
	return nil
}

func (w *Worker) findItem(ctx context.Context, itemID string) (core.Item, string, error) {
	categories, err := w.catalog.ListCategories(ctx)
	if err != nil {
		return core.Item{}, "", fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		for _, item := range c.Items {
			if item.ID == itemID {
				return item, c.Name, nil
			}
		}
	}
	return core.Item{}, "", fmt.Errorf("item %q not found in catalog", itemID)
}
