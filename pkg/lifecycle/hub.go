package lifecycle

import "sync"

// CancelFunc removes a subscription from the hub. Safe to call more
// than once.
type CancelFunc func()

// Hub fans application lifecycle transitions out to subscribers. The
// presentation layer publishes raw state changes; the hub derives
// transitions and delivers them non-blocking, dropping events for slow
// subscribers rather than stalling the event loop.
//
// Subscribers are expected to be registered for exactly the lifetime of
// an outstanding checkout session and removed on terminal
// reconciliation.
type Hub struct {
	mu          sync.RWMutex
	current     State
	subscribers map[chan Transition]struct{}
	bufferSize  int
	closed      bool
}

// NewHub creates a hub with the given initial state.
func NewHub(initial State) *Hub {
	return &Hub{
		current:     initial,
		subscribers: make(map[chan Transition]struct{}),
		bufferSize:  4,
	}
}

// Current returns the last published state.
func (h *Hub) Current() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe registers a new subscriber. The returned channel receives
// every transition published after registration until cancel is called
// or the hub is closed, at which point the channel is closed.
func (h *Hub) Subscribe() (<-chan Transition, CancelFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Transition, h.bufferSize)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subscribers[ch]; ok {
				delete(h.subscribers, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish records a new lifecycle state and delivers the resulting
// transition to all subscribers. Publishing the current state again is
// a no-op. Delivery is non-blocking; a full subscriber buffer drops the
// event for that subscriber.
func (h *Hub) Publish(next State) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || next == h.current {
		return
	}

	t := Transition{From: h.current, To: next}
	h.current = next

	for ch := range h.subscribers {
		select {
		case ch <- t:
		default:
		}
	}
}

// Close shuts the hub down and closes all subscriber channels. Safe to
// call multiple times.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for ch := range h.subscribers {
		close(ch)
	}
	clear(h.subscribers)
}
