package subscription

import (
	"context"

	"github.com/Eui18/recetkit/pkg/api"
	"github.com/Eui18/recetkit/pkg/plan"
)

// Gateway requests hosted-checkout redirects and cancellations from the
// payment backend. Implementations validate identifiers before
// dispatching and map backend failures onto the api error taxonomy.
type Gateway interface {
	// Initiate requests a hosted-checkout redirect URL for the user.
	Initiate(ctx context.Context, userID string) (redirectURL string, err error)
	// Cancel requests cancellation of the user's subscription.
	Cancel(ctx context.Context, userID, subscriptionID string) (*CancellationResult, error)
}

// TierSource reports a user's current subscription tier as known to the
// backend. Reconciliation uses it to observe the outcome of an
// out-of-process payment.
type TierSource interface {
	CurrentTier(ctx context.Context, userID string) (plan.Tier, string, error)
}

// APIGateway adapts the backend client to the Gateway interface.
type APIGateway struct {
	client *api.Client
}

// NewAPIGateway wraps the backend client.
func NewAPIGateway(client *api.Client) *APIGateway {
	if client == nil {
		panic("subscription: api client is required")
	}
	return &APIGateway{client: client}
}

func (g *APIGateway) Initiate(ctx context.Context, userID string) (string, error) {
	return g.client.CreatePayment(ctx, userID)
}

func (g *APIGateway) Cancel(ctx context.Context, userID, subscriptionID string) (*CancellationResult, error) {
	result, err := g.client.CancelSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	out := &CancellationResult{Message: result.Message}
	if result.User != nil {
		out.User = &User{
			ID:                  result.User.ID,
			Name:                result.User.Name,
			Email:               result.User.Email,
			Tier:                result.User.Tier,
			SubscriptionID:      result.User.SubscriptionID,
			PendingCancellation: result.User.PendingCancellation,
		}
	}
	return out, nil
}
