package lifecycle

// State is the host application's lifecycle state as reported by the
// platform: active in the foreground, inactive during transitions, or
// backgrounded.
type State string

const (
	StateBackground State = "background"
	StateInactive   State = "inactive"
	StateActive     State = "active"
)

// Transition is a single lifecycle change delivered to subscribers.
type Transition struct {
	From State
	To   State
}

// Foregrounded reports whether the transition brought the application
// back to the foreground. This is the trigger for payment
// reconciliation: a user returning from the external checkout produces
// exactly this transition.
func (t Transition) Foregrounded() bool {
	return t.To == StateActive && t.From != StateActive
}
