package notify

import (
	"context"
	"sync"
)

// Notifier delivers notifications to the presentation layer.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(ctx context.Context, n Notification) error

func (f Func) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Noop discards all notifications. The default for hosts that poll
// controller state instead of consuming events.
type Noop struct{}

func (Noop) Notify(context.Context, Notification) error { return nil }

// Memory records notifications in memory. Useful for tests and for
// simple UIs that render a notification list.
type Memory struct {
	mu    sync.RWMutex
	items []Notification
}

// NewMemory creates an empty in-memory notifier.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Notify(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, n)
	return nil
}

// All returns every recorded notification in delivery order.
func (m *Memory) All() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Notification, len(m.items))
	copy(out, m.items)
	return out
}

// Unread returns notifications not yet marked read.
func (m *Memory) Unread() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Notification
	for _, n := range m.items {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead marks the notification with the given ID as read.
func (m *Memory) MarkRead(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Read = true
			return
		}
	}
}
