package subscription

import "github.com/Eui18/recetkit/pkg/plan"

// User is the controller's view of the signed-in account. The tier is
// mutated only after a confirmed backend response; PendingCancellation
// may be set optimistically once the gateway acknowledges a
// cancellation request.
type User struct {
	ID                  string
	Name                string
	Email               string
	Tier                plan.Tier
	SubscriptionID      string // empty when the user has no paid subscription
	PendingCancellation bool
}

// PollerState is the reconciliation poller's position in its state
// machine.
type PollerState string

const (
	// PollerIdle means no checkout session is outstanding.
	PollerIdle PollerState = "idle"
	// PollerAwaitingReturn means a checkout left the process and the
	// outcome has not been observed yet. Stable and safe to re-enter
	// arbitrarily many times.
	PollerAwaitingReturn PollerState = "awaiting_return"
	// PollerReconciling means a reconciliation query is in flight.
	PollerReconciling PollerState = "reconciling"
)

// Outcome classifies the result of a reconciliation pass.
type Outcome string

const (
	// OutcomeNone means there was no session to reconcile.
	OutcomeNone Outcome = "none"
	// OutcomePending means the payment is still within its window and
	// may yet complete.
	OutcomePending Outcome = "pending"
	// OutcomeUpgraded means the backend confirmed the premium tier.
	OutcomeUpgraded Outcome = "upgraded"
	// OutcomeExpired means the payment window elapsed without an
	// upgrade and the session was discarded.
	OutcomeExpired Outcome = "expired"
)

// View is the derived subscription state exposed to the presentation
// layer. It is recomputed from the User and poller state on every read
// and never independently mutated.
type View struct {
	CurrentTier         plan.Tier
	Active              bool
	PendingCancellation bool
	SelectedTier        plan.Tier // TierNone when no selection is in progress
	PaymentInProgress   bool
	ReconcileInProgress bool
	PollerState         PollerState
}

// ConfirmResult reports what ConfirmSelection did. RedirectURL is set
// only for upgrades; the presentation layer is responsible for opening
// it and for returning the user afterwards.
type ConfirmResult struct {
	Change      plan.Change
	RedirectURL string
}

// CancellationResult is the gateway's acknowledgment of a cancellation.
// User carries the backend's updated account snapshot when provided;
// the controller prefers it over inferring fields locally.
type CancellationResult struct {
	User    *User
	Message string
}
