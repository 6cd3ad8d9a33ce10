package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"wishlist/internal/amqp"
	"wishlist/internal/core"
	"wishlist/internal/log"
	"wishlist/internal/store/memory"
)

type recordingAppender struct {
	rows []PurchaseRow
	err  error
}

func (a *recordingAppender) AppendPurchase(_ context.Context, row PurchaseRow) error {
	if a.err != nil {
		return a.err
	}
	a.rows = append(a.rows, row)
	return nil
}

func newTestWorker(a *recordingAppender) *Worker {
	return NewWorker(memory.NewSeeded(), a, log.New(log.DefaultConfig()))
}

func TestPurchaseExported(t *testing.T) {
	a := &recordingAppender{}
	w := newTestWorker(a)

	ev := amqp.NewStatusChangedEvent("lanesund", core.StatusPurchased)
	if err := w.HandleStatusEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleStatusEvent: %v", err)
	}

	if len(a.rows) != 1 {
		t.Fatalf("exported %d rows, want 1", len(a.rows))
	}
	row := a.rows[0]
	if row.ItemID != "lanesund" || row.Price != 899.99 || row.Category != "Sideboard" {
		t.Errorf("unexpected row %+v", row)
	}
	if row.When.IsZero() {
		t.Error("row should carry the event timestamp")
	}
}

func TestNonPurchaseEventsSkipped(t *testing.T) {
	a := &recordingAppender{}
	w := newTestWorker(a)
	ctx := context.Background()

	events := []*amqp.StatusEvent{
		amqp.NewStatusChangedEvent("lanesund", core.StatusShortlisted),
		amqp.NewStatusChangedEvent("lanesund", core.StatusUnset),
		amqp.NewResetEvent(),
	}
	for _, ev := range events {
		if err := w.HandleStatusEvent(ctx, ev); err != nil {
			t.Errorf("event %+v should be acknowledged without error: %v", ev, err)
		}
	}
	if len(a.rows) != 0 {
		t.Errorf("no rows should be exported, got %+v", a.rows)
	}
}

func TestUnknownItemRequeues(t *testing.T) {
	w := newTestWorker(&recordingAppender{})
	ev := amqp.NewStatusChangedEvent("ghost", core.StatusPurchased)
	if err := w.HandleStatusEvent(context.Background(), ev); err == nil {
		t.Error("unknown item should return an error (requeue)")
	}
}

func TestAppendFailureRequeues(t *testing.T) {
	a := &recordingAppender{err: errors.New("sheets unavailable")}
	w := newTestWorker(a)
	ev := amqp.NewStatusChangedEvent("vesken", core.StatusPurchased)
	if err := w.HandleStatusEvent(context.Background(), ev); err == nil {
		t.Error("appender failure should propagate for requeue")
	}
}

func TestMissingTimestampDefaults(t *testing.T) {
	a := &recordingAppender{}
	w := newTestWorker(a)

	ev := &amqp.StatusEvent{ItemID: "vesken", Status: core.StatusPurchased}
	if err := w.HandleStatusEvent(context.Background(), ev); err != nil {
		t.Fatal(err)
	}
	if time.Since(a.rows[0].When) > time.Minute {
		t.Errorf("zero timestamp should default to now, got %v", a.rows[0].When)
	}
}
