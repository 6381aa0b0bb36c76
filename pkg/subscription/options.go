package subscription

import (
	"log/slog"
	"time"

	"github.com/Eui18/recetkit/pkg/lifecycle"
	"github.com/Eui18/recetkit/pkg/notify"
)

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the notifier receiving outcome events.
// The default discards them.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLifecycleHub connects the controller to the application lifecycle
// signal. While a checkout session is outstanding, the controller
// subscribes and Run reconciles on every return to the foreground.
func WithLifecycleHub(hub *lifecycle.Hub) Option {
	return func(c *Controller) {
		c.hub = hub
	}
}

// WithLogger sets the operational logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock injects a time source, primarily for tests exercising the
// staleness window.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithStalenessWindow overrides how long an unconfirmed checkout session
// is considered live before reconciliation abandons it. Default 10
// minutes.
func WithStalenessWindow(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.staleness = d
		}
	}
}
