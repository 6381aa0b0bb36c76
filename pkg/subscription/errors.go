package subscription

import "errors"

var (
	// ErrNoSelection is returned by ConfirmSelection when no candidate
	// plan has been selected.
	ErrNoSelection = errors.New("no plan selected")
	// ErrNoChange is returned when the requested transition is not an
	// upgrade or a downgrade.
	ErrNoChange = errors.New("selection does not change the plan")
	// ErrUnknownPlan is returned when the selected tier is not offered
	// by the catalog.
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrOperationInProgress guards against overlapping operations.
	// Exactly one payment attempt may be outstanding per user, and
	// overlapping calls are rejected rather than queued.
	ErrOperationInProgress = errors.New("another subscription operation is in progress")

	// ErrInvalidCancellationState is returned when cancellation
	// preconditions do not hold. No network call is made.
	ErrInvalidCancellationState = errors.New("subscription cannot be cancelled in its current state")

	// ErrPaymentInitiation wraps failures to obtain a checkout redirect.
	// No partial state is committed.
	ErrPaymentInitiation = errors.New("failed to initiate payment")

	// ErrTransientQuery wraps reconciliation query failures. The
	// checkout session is left intact and reconciliation may be retried.
	ErrTransientQuery = errors.New("transient reconciliation query failure")
)
