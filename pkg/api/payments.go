package api

import (
	"context"
	"fmt"
	"net/http"
)

type createPaymentRequest struct {
	UserID string `json:"id_user"`
}

type createPaymentResponse struct {
	URL string `json:"url"`
}

// CreatePayment asks the backend for a hosted-checkout redirect URL for
// the premium upgrade. The payment itself completes outside the process;
// callers hand the URL to the presentation layer for external navigation.
func (c *Client) CreatePayment(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/payments", createPaymentRequest{UserID: userID})
	if err != nil {
		return "", err
	}

	var resp createPaymentResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}

	if resp.URL == "" {
		return "", fmt.Errorf("%w: no checkout URL in response", ErrUnexpected)
	}
	return resp.URL, nil
}

type cancelSubscriptionRequest struct {
	UserID         string `json:"id_user"`
	SubscriptionID string `json:"id_suscripcion"`
}

type cancelSubscriptionResponse struct {
	Data *wireUser `json:"data"`
	Msg  string    `json:"msg"`
}

// CancelSubscription requests cancellation of an active subscription.
// Both identifiers are required; the call fails fast without dispatching
// when either is missing. The result carries the backend's updated user
// snapshot when one is returned.
func (c *Client) CancelSubscription(ctx context.Context, userID, subscriptionID string) (*CancellationResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}
	if subscriptionID == "" {
		return nil, fmt.Errorf("%w: subscription ID is required", ErrValidation)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/subscriptions/cancel", cancelSubscriptionRequest{
		UserID:         userID,
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		return nil, err
	}

	var resp cancelSubscriptionResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	result := &CancellationResult{Message: resp.Msg}
	if resp.Data != nil {
		result.User = resp.Data.toUser()
	}
	return result, nil
}
