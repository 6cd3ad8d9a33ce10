package amqp

import (
	"encoding/json"
	"time"

	"wishlist/internal/core"
)

// StatusEvent is published after every local status commit. Status is empty
// for toggle-off (the item returned to unset); Reset marks a delete-all, in
// which case ItemID is empty too.
type StatusEvent struct {
	ItemID    string      `json:"item_id,omitempty"`
	Status    core.Status `json:"status,omitempty"`
	Reset     bool        `json:"reset,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewStatusChangedEvent(itemID string, status core.Status) *StatusEvent {
	return &StatusEvent{ItemID: itemID, Status: status, Timestamp: time.Now()}
}

func NewResetEvent() *StatusEvent {
	return &StatusEvent{Reset: true, Timestamp: time.Now()}
}

func (e *StatusEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func StatusEventFromJSON(data []byte) (*StatusEvent, error) {
	var ev StatusEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
