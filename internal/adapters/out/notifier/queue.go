// Package notifier provides the outbound notification adapters: an in-memory
// queue that buffers status notifications emitted after commits, and a
// log-backed sender used until a real mail channel is wired in.
package notifier

import (
	"sync"

	"printshop/internal/core/ports"
)

// InMemoryQueue is a mutex-guarded notification buffer implementing
// ports.NotificationQueue. Command handlers enqueue after their transaction
// commits; the dispatch job drains on its own schedule.
type InMemoryQueue struct {
	mu      sync.Mutex
	pending []ports.StatusNotification
}

// NewInMemoryQueue creates an empty notification queue.
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{}
}

// Enqueue adds a notification to the queue. Never blocks beyond the mutex.
func (q *InMemoryQueue) Enqueue(notification ports.StatusNotification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, notification)
}

// Drain removes and returns all queued notifications in enqueue order.
func (q *InMemoryQueue) Drain() []ports.StatusNotification {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := q.pending
	q.pending = nil
	return drained
}

// Len reports the number of queued notifications.
func (q *InMemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}
