package ports

import (
	"context"
	"time"
)

// Notification is a queued mock delivery.
type Notification struct {
	UserID   string
	Message  string
	QueuedAt time.Time
}

// NotificationDeliverer performs the (mock) delivery of a notification.
// Implementations run on dispatcher workers, decoupled from the mutation
// that queued the notification.
type NotificationDeliverer interface {
	Deliver(ctx context.Context, n Notification) error
}
