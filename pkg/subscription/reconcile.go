package subscription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Eui18/recetkit/pkg/checkout"
	"github.com/Eui18/recetkit/pkg/logger"
	"github.com/Eui18/recetkit/pkg/notify"
	"github.com/Eui18/recetkit/pkg/plan"
)

// Reconcile settles the outstanding checkout session, if any, against
// the backend's view of the user's tier.
//
// The pass is idempotent: with no session it reports OutcomeNone, and a
// session already consumed by a concurrent pass cannot be consumed
// twice. A premium tier observed on the backend resolves the session as
// paid regardless of its age; otherwise the session survives until the
// staleness window elapses, after which it is discarded as abandoned.
// Transient failures leave the session untouched so a later pass can
// retry.
func (c *Controller) Reconcile(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.reconciling {
		c.mu.Unlock()
		return OutcomePending, ErrOperationInProgress
	}
	c.reconciling = true
	prev := c.poller
	c.poller = PollerReconciling
	c.mu.Unlock()

	outcome, err := c.reconcileOnce(ctx)

	c.mu.Lock()
	c.reconciling = false
	switch outcome {
	case OutcomeUpgraded, OutcomeExpired, OutcomeNone:
		c.payment = false
		c.poller = PollerIdle
		c.unsubscribeLocked()
		if outcome == OutcomeUpgraded || outcome == OutcomeExpired {
			c.selected = plan.TierNone
		}
	default:
		// Non-terminal pass; the poller goes back to where it was so a
		// transient failure with no payment outstanding stays idle.
		c.poller = prev
	}
	c.mu.Unlock()

	return outcome, err
}

func (c *Controller) reconcileOnce(ctx context.Context) (Outcome, error) {
	session, err := c.store.Get(ctx)
	if errors.Is(err, checkout.ErrNoSession) {
		return OutcomeNone, nil
	}
	if err != nil {
		return OutcomePending, errors.Join(ErrTransientQuery, err)
	}

	tier, subscriptionID, err := c.tiers.CurrentTier(ctx, session.UserID)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "reconciliation query failed",
			logger.UserID(session.UserID), logger.Error(err))
		return OutcomePending, errors.Join(ErrTransientQuery, err)
	}

	if tier == plan.TierPremium {
		if err := c.store.Delete(ctx); err != nil {
			return OutcomePending, errors.Join(ErrTransientQuery, err)
		}

		c.mu.Lock()
		c.user.Tier = tier
		c.user.SubscriptionID = subscriptionID
		c.user.PendingCancellation = false
		c.mu.Unlock()

		c.log.LogAttrs(ctx, slog.LevelInfo, "payment confirmed",
			logger.UserID(session.UserID), logger.Tier(tier.String()))
		c.sendNotification(ctx, notify.New(session.UserID, notify.TypeSuccess,
			"payment_confirmed", "premium is now active, sign in again to refresh your session").
			WithRemediation(notify.RemediationReauthenticate))
		return OutcomeUpgraded, nil
	}

	if session.Age(c.now()) > c.staleness {
		if err := c.store.Delete(ctx); err != nil {
			return OutcomePending, errors.Join(ErrTransientQuery, err)
		}

		c.log.LogAttrs(ctx, slog.LevelInfo, "checkout session abandoned",
			logger.UserID(session.UserID))
		c.sendNotification(ctx, notify.New(session.UserID, notify.TypeError,
			"payment_not_completed", "the payment was not confirmed in time").
			WithRemediation(notify.RemediationRetryPayment))
		return OutcomeExpired, nil
	}

	return OutcomePending, nil
}

// Resume restores the awaiting-return state from a session persisted by
// a previous process. Call it once after New when the store may hold a
// marker from before a restart; it reconciles immediately so a payment
// completed while the app was gone is settled without waiting for a
// foreground event.
func (c *Controller) Resume(ctx context.Context) (Outcome, error) {
	session, err := c.store.Get(ctx)
	if errors.Is(err, checkout.ErrNoSession) {
		return OutcomeNone, nil
	}
	if err != nil {
		return OutcomePending, errors.Join(ErrTransientQuery, err)
	}

	c.mu.Lock()
	if !c.payment {
		c.payment = true
		c.poller = PollerAwaitingReturn
		c.subscribeLocked()
	}
	c.mu.Unlock()

	c.log.LogAttrs(ctx, slog.LevelDebug, "resuming checkout session",
		logger.UserID(session.UserID))
	return c.Reconcile(ctx)
}

// Run pumps application lifecycle transitions into reconciliation
// passes until the context is canceled. Only a genuine return to the
// foreground triggers a pass; foreground-to-foreground noise is ignored
// at the hub. Run blocks and is meant for a dedicated goroutine.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.mu.Lock()
		events := c.events
		c.mu.Unlock()

		if events == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-c.awakened:
				continue
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case tr, ok := <-events:
			if !ok {
				c.mu.Lock()
				c.unsubscribeLocked()
				c.mu.Unlock()
				continue
			}
			if !tr.Foregrounded() {
				continue
			}
			if _, err := c.Reconcile(ctx); err != nil && !errors.Is(err, ErrOperationInProgress) {
				c.log.LogAttrs(ctx, slog.LevelWarn, "reconciliation pass failed",
					logger.PollerState(string(c.View().PollerState)), logger.Error(err))
			}
		}
	}
}
