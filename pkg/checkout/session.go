package checkout

import "time"

// Session marks a hosted-checkout payment that left the process and has
// not been reconciled yet. At most one session exists per client
// instance; the single-slot invariant is what makes concurrent access to
// the store safe without locking across suspension points.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"timestamp"`
}

// Age returns how long ago the session was created.
func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}
