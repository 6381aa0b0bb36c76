package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Eui18/recetkit/pkg/plan"
)

type userEnvelope struct {
	Data wireUser `json:"data"`
}

// GetUser fetches the current account snapshot for the given user ID.
// The backend's subscription type is mapped onto a plan.Tier; absent or
// unknown values map to TierNone.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/users/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var env userEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}

	user := env.Data.toUser()
	if user.ID == "" {
		user.ID = userID
	}
	return user, nil
}

// CurrentTier reports the user's subscription tier and subscription ID.
// It satisfies the subscription controller's TierSource collaborator.
func (c *Client) CurrentTier(ctx context.Context, userID string) (plan.Tier, string, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		return plan.TierNone, "", err
	}
	return user.Tier, user.SubscriptionID, nil
}
