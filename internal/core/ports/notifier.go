package ports

import (
	"context"
	"time"

	"pressing/internal/core/domain/model/kernel"
)

// NotificationKind identifies the message template sent to a customer.
type NotificationKind string

const (
	NotificationOrderStarted       NotificationKind = "order_started"
	NotificationOrderReady         NotificationKind = "order_ready"
	NotificationOrderDelivered     NotificationKind = "order_delivered"
	NotificationOrderReadyReminder NotificationKind = "order_ready_reminder"
)

func (k NotificationKind) String() string {
	return string(k)
}

// Notification is a message addressed to one user.
type Notification struct {
	UserID      string
	Kind        NotificationKind
	Title       string
	Body        string
	OrderID     kernel.UUID
	OrderNumber string
	SentAt      time.Time
}

// Notifier delivers a notification to its user. Implementations must honour
// ctx cancellation.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// MetricsRecorder receives lifecycle measurements.
type MetricsRecorder interface {
	TransitionApplied(from, to string)
	NotificationFailed(kind NotificationKind)
	OrdersByStatus(counts map[string]int)
}
