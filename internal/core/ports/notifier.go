package ports

import (
	"context"
)

// Event types pushed to connected merchant terminals.
const (
	EventNewOrder = "NEW_ORDER"
	EventReminder = "REMINDER"
)

// Event is a notification fanned out to every connected merchant client.
type Event struct {
	Type    string `json:"type"`
	OrderID int64  `json:"orderId"`
	Content string `json:"content"`
}

// Notifier defines the contract for best-effort fan-out of order events to
// merchant terminals. Delivery is not guaranteed: a slow or dead client
// never blocks order processing.
type Notifier interface {
	Broadcast(ctx context.Context, event Event)
}
