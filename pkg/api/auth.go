package api

import (
	"context"
	"errors"
	"net/http"
)

// Login authenticates with email and password and returns the account
// snapshot. Invalid credentials (backend 401 or 404) map to
// ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	if err := c.validateInput(creds); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}

	var env userEnvelope
	if err := c.doAuth(req, &env, map[int]error{
		http.StatusUnauthorized: ErrInvalidCredentials,
		http.StatusNotFound:     ErrInvalidCredentials,
	}); err != nil {
		return nil, err
	}
	return env.Data.toUser(), nil
}

// Register creates a new account. A 409 maps to ErrEmailTaken.
func (c *Client) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := c.validateInput(reg); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return nil, err
	}

	var env userEnvelope
	if err := c.doAuth(req, &env, map[int]error{
		http.StatusConflict: ErrEmailTaken,
	}); err != nil {
		return nil, err
	}
	return env.Data.toUser(), nil
}

// doAuth is do with per-status overrides for auth-specific errors.
func (c *Client) doAuth(req *http.Request, out any, overrides map[int]error) error {
	err := c.do(req, out)
	if err == nil {
		return nil
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		if mapped, ok := overrides[statusErr.code]; ok {
			return mapped
		}
	}
	return err
}
