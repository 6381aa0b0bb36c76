// Package subscription drives the client-side subscription state
// machine: plan selection, hosted-checkout payment initiation,
// cancellation, and reconciliation of payments that complete outside
// the process.
//
// The Controller is the single owner of the signed-in user's
// subscription state. Upgrades to a paid tier hand the user off to a
// hosted checkout page via a redirect URL; the payment outcome is never
// observed directly. Instead a session marker is persisted through a
// checkout.Store and a reconciliation pass later queries the backend
// for the user's effective tier, settling the marker as paid,
// abandoned, or still pending.
//
//	ctrl := subscription.New(user, plan.DefaultCatalog(), gateway, client, store,
//		subscription.WithNotifier(notifier),
//		subscription.WithLifecycleHub(hub),
//	)
//
//	if err := ctrl.SelectPlan(plan.TierPremium); err != nil { ... }
//	result, err := ctrl.ConfirmSelection(ctx)
//	if err != nil { ... }
//	openBrowser(result.RedirectURL)
//
//	go ctrl.Run(ctx) // reconcile whenever the app returns to the foreground
//
// Operations on a Controller are mutually exclusive: a second operation
// started while one is outstanding is rejected with
// ErrOperationInProgress rather than queued. The subscription tier held
// by the controller changes only in response to confirmed backend
// state, never optimistically.
package subscription
