package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"printshop/internal/adapters/out/notifier"
	"printshop/internal/core/ports"
	"printshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNotificationSender is a mock implementation of ports.NotificationSender.
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Send(ctx context.Context, notification ports.StatusNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func TestNotificationDispatchJob_DispatchPending_SendsEverything(t *testing.T) {
	queue := notifier.NewInMemoryQueue()
	first := ports.StatusNotification{OrderNumber: "PO-1", Status: "Press"}
	second := ports.StatusNotification{OrderNumber: "PO-2", Status: "Shipping"}
	queue.Enqueue(first)
	queue.Enqueue(second)

	sender := new(MockNotificationSender)
	sender.On("Send", mock.Anything, first).Return(nil).Once()
	sender.On("Send", mock.Anything, second).Return(nil).Once()

	job := jobs.NewNotificationDispatchJob(queue, sender, slog.Default())
	job.DispatchPending(t.Context())

	sender.AssertExpectations(t)
	assert.Zero(t, queue.Len())
}

func TestNotificationDispatchJob_DispatchPending_ContinuesAfterSendFailure(t *testing.T) {
	queue := notifier.NewInMemoryQueue()
	failing := ports.StatusNotification{OrderNumber: "PO-1", Status: "Press"}
	healthy := ports.StatusNotification{OrderNumber: "PO-2", Status: "Shipping"}
	queue.Enqueue(failing)
	queue.Enqueue(healthy)

	sender := new(MockNotificationSender)
	sender.On("Send", mock.Anything, failing).Return(errors.New("smtp unavailable")).Once()
	sender.On("Send", mock.Anything, healthy).Return(nil).Once()

	job := jobs.NewNotificationDispatchJob(queue, sender, slog.Default())
	job.DispatchPending(t.Context())

	sender.AssertExpectations(t)
}

func TestNotificationDispatchJob_DispatchPending_EmptyQueueIsNoop(t *testing.T) {
	queue := notifier.NewInMemoryQueue()
	sender := new(MockNotificationSender)

	job := jobs.NewNotificationDispatchJob(queue, sender, slog.Default())
	job.DispatchPending(t.Context())

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
