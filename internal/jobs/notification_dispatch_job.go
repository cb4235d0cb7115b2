package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob periodically drains the notification queue and
// hands each entry to the configured sender. Status-change commands enqueue
// after their transaction commits; this job is the only consumer.
type NotificationDispatchJob struct {
	queue  ports.NotificationQueue
	sender ports.NotificationSender
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a job that drains the queue every five
// seconds and dispatches through the given sender.
func NewNotificationDispatchJob(
	queue ports.NotificationQueue,
	sender ports.NotificationSender,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		queue:  queue,
		sender: sender,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job on its five-second schedule.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.DispatchPending(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every five seconds)")
	return nil
}

// DispatchPending drains the queue once and sends every entry. Send failures
// are logged and the notification is dropped; a status change never depends
// on delivery succeeding.
func (j *NotificationDispatchJob) DispatchPending(ctx context.Context) {
	for _, notification := range j.queue.Drain() {
		if err := j.sender.Send(ctx, notification); err != nil {
			j.logger.ErrorContext(ctx, "Failed to send status notification",
				"orderNumber", notification.OrderNumber,
				"status", notification.Status,
				"error", err,
			)
		}
	}
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
