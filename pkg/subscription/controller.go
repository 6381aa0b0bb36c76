package subscription

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Eui18/recetkit/pkg/checkout"
	"github.com/Eui18/recetkit/pkg/lifecycle"
	"github.com/Eui18/recetkit/pkg/logger"
	"github.com/Eui18/recetkit/pkg/notify"
	"github.com/Eui18/recetkit/pkg/plan"
)

// DefaultStalenessWindow is how long an unconfirmed checkout session
// stays live before reconciliation treats it as abandoned.
const DefaultStalenessWindow = 10 * time.Minute

// Controller owns the user's subscription state and drives plan
// changes, payment initiation, and reconciliation. All operations are
// safe for concurrent use; overlapping operations on the same
// controller are rejected with ErrOperationInProgress rather than
// queued.
type Controller struct {
	catalog  *plan.Catalog
	gateway  Gateway
	tiers    TierSource
	store    checkout.Store
	notifier notify.Notifier
	hub      *lifecycle.Hub
	log      *slog.Logger
	now      func() time.Time

	staleness time.Duration

	mu          sync.Mutex
	user        User
	selected    plan.Tier
	payment     bool // checkout outstanding
	reconciling bool
	busy        bool // confirm/cancel call in flight
	poller      PollerState

	events      <-chan lifecycle.Transition
	unsubscribe lifecycle.CancelFunc
	awakened    chan struct{} // signals Run that a subscription appeared
}

// New creates a controller for the signed-in user. The catalog,
// gateway, tier source, and session store are required; nil values
// panic to fail fast at construction.
func New(user User, catalog *plan.Catalog, gw Gateway, tiers TierSource, store checkout.Store, opts ...Option) *Controller {
	if catalog == nil {
		panic("subscription: plan catalog is required")
	}
	if gw == nil {
		panic("subscription: gateway is required")
	}
	if tiers == nil {
		panic("subscription: tier source is required")
	}
	if store == nil {
		panic("subscription: checkout store is required")
	}

	c := &Controller{
		catalog:   catalog,
		gateway:   gw,
		tiers:     tiers,
		store:     store,
		notifier:  notify.Noop{},
		log:       slog.Default(),
		now:       time.Now,
		staleness: DefaultStalenessWindow,
		user:      user,
		selected:  plan.TierNone,
		poller:    PollerIdle,
		awakened:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// View returns the derived subscription state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{
		CurrentTier:         c.user.Tier,
		Active:              c.user.Tier != plan.TierNone,
		PendingCancellation: c.user.PendingCancellation,
		SelectedTier:        c.selected,
		PaymentInProgress:   c.payment,
		ReconcileInProgress: c.reconciling,
		PollerState:         c.poller,
	}
}

// CurrentUser returns a copy of the controller's user state.
func (c *Controller) CurrentUser() User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// SelectPlan records a candidate plan selection. Selecting the current
// tier is a silent no-op: it never initiates a transition and leaves
// any prior candidate untouched.
func (c *Controller) SelectPlan(tier plan.Tier) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payment || c.busy {
		return ErrOperationInProgress
	}
	if tier == c.user.Tier {
		return nil
	}
	if !c.catalog.HasTier(tier) {
		return ErrUnknownPlan
	}

	c.selected = tier
	return nil
}

// ConfirmSelection acts on the recorded candidate selection.
//
// Upgrades request a hosted-checkout redirect from the gateway, persist
// the checkout session marker, and return the redirect URL for the
// presentation layer to open; the payment completes outside the
// process. Downgrades report success directly: reverting to the free
// tier needs no payment, and the product currently performs no backend
// mutation for it. Anything else is ErrNoChange.
func (c *Controller) ConfirmSelection(ctx context.Context) (*ConfirmResult, error) {
	c.mu.Lock()
	if c.payment || c.busy || c.reconciling {
		c.mu.Unlock()
		return nil, ErrOperationInProgress
	}
	if c.selected == plan.TierNone {
		c.mu.Unlock()
		return nil, ErrNoSelection
	}

	user := c.user
	selected := c.selected
	change := plan.Classify(user.Tier, selected)

	switch change {
	case plan.Upgrade:
		c.busy = true
		c.mu.Unlock()
		return c.initiateUpgrade(ctx, user, selected)

	case plan.Downgrade:
		c.selected = plan.TierNone
		c.mu.Unlock()

		c.sendNotification(ctx, notify.New(user.ID, notify.TypeInfo,
			"plan_changed", "reverted to the basic plan"))
		return &ConfirmResult{Change: plan.Downgrade}, nil

	default:
		c.mu.Unlock()
		return nil, ErrNoChange
	}
}

// initiateUpgrade runs the gateway call outside the controller lock;
// the busy flag rejects overlapping operations in the meantime.
func (c *Controller) initiateUpgrade(ctx context.Context, user User, selected plan.Tier) (*ConfirmResult, error) {
	clearBusy := func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}

	redirectURL, err := c.gateway.Initiate(ctx, user.ID)
	if err != nil {
		clearBusy()
		return nil, errors.Join(ErrPaymentInitiation, err)
	}

	session := &checkout.Session{UserID: user.ID, CreatedAt: c.now()}
	if err := c.store.Put(ctx, session); err != nil {
		// Without a persisted marker the payment could never be
		// reconciled, so the redirect is withheld and no state changes.
		clearBusy()
		return nil, errors.Join(ErrPaymentInitiation, err)
	}

	c.mu.Lock()
	c.busy = false
	c.payment = true
	c.poller = PollerAwaitingReturn
	c.subscribeLocked()
	c.mu.Unlock()

	c.log.LogAttrs(ctx, slog.LevelDebug, "checkout initiated",
		logger.UserID(user.ID), logger.Tier(selected.String()))

	return &ConfirmResult{Change: plan.Upgrade, RedirectURL: redirectURL}, nil
}

// RequestCancellation asks the gateway to cancel the user's premium
// subscription. On success the pending-cancellation flag is set while
// the tier remains premium: the user keeps their entitlement until the
// billing period ends, which the backend enforces.
func (c *Controller) RequestCancellation(ctx context.Context) (*CancellationResult, error) {
	c.mu.Lock()
	if c.payment || c.busy || c.reconciling {
		c.mu.Unlock()
		return nil, ErrOperationInProgress
	}

	user := c.user
	ok := user.Tier == plan.TierPremium &&
		!user.PendingCancellation &&
		user.SubscriptionID != ""
	if !ok {
		c.mu.Unlock()
		return nil, ErrInvalidCancellationState
	}

	c.busy = true
	c.mu.Unlock()

	result, err := c.gateway.Cancel(ctx, user.ID, user.SubscriptionID)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	if result.User != nil {
		c.user = *result.User
	}
	c.user.PendingCancellation = true
	c.mu.Unlock()

	c.sendNotification(ctx, notify.New(user.ID, notify.TypeInfo,
		"cancellation_requested", "premium remains active until the period ends"))
	return result, nil
}

// subscribeLocked registers with the lifecycle hub for the duration of
// the outstanding session. Caller holds c.mu.
func (c *Controller) subscribeLocked() {
	if c.hub == nil || c.unsubscribe != nil {
		return
	}
	c.events, c.unsubscribe = c.hub.Subscribe()

	select {
	case c.awakened <- struct{}{}:
	default:
	}
}

// unsubscribeLocked drops the lifecycle subscription. Caller holds c.mu.
func (c *Controller) unsubscribeLocked() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
		c.events = nil
	}
}

func (c *Controller) sendNotification(ctx context.Context, n notify.Notification) {
	if err := c.notifier.Notify(ctx, n); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "failed to deliver notification",
			logger.UserID(n.UserID), logger.Error(err))
	}
}
