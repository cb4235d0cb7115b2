package notifier

import (
	"context"
	"log/slog"

	"printshop/internal/core/ports"
)

// LogSender writes status notifications to the structured log instead of an
// email channel. The shop front-ends poll the board for state; the log keeps
// an auditable trail of what would have been sent.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that logs notifications through the given logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the notification. Always succeeds.
func (s *LogSender) Send(ctx context.Context, notification ports.StatusNotification) error {
	s.logger.InfoContext(ctx, "status notification",
		"recipient", notification.RecipientEmail,
		"subject", notification.Subject,
		"orderNumber", notification.OrderNumber,
		"status", notification.Status,
		"description", notification.Description,
		"trackingNumber", notification.TrackingNumber,
		"shippingMethod", notification.ShippingMethod,
	)

	return nil
}
