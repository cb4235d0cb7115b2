package ports

import "context"

// StatusNotification is a request to notify a recipient about a status
// change on an order or order item. Delivery mechanics (email templates,
// SMTP) live outside this core; the core only emits the trigger.
type StatusNotification struct {
	RecipientEmail string
	Subject        string
	OrderNumber    string
	Status         string
	Description    string
	TrackingNumber string
	ShippingMethod string
}

// NotificationSender dispatches a single status notification. Senders are
// fire-and-forget from the caller's perspective: a failed send is logged by
// the dispatch job and never propagated to the status-change operation that
// produced it.
type NotificationSender interface {
	Send(ctx context.Context, notification StatusNotification) error
}

// NotificationQueue buffers notifications emitted by command handlers after
// their transaction commits, decoupling the state change from delivery. The
// dispatch job drains the queue asynchronously, so a slow or failing
// notification channel never blocks or aborts a status transition.
type NotificationQueue interface {
	// Enqueue adds a notification to the queue. Never blocks.
	Enqueue(notification StatusNotification)

	// Drain removes and returns all queued notifications.
	Drain() []StatusNotification
}
