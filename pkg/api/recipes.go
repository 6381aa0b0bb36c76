package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type recipesEnvelope struct {
	Data []Recipe `json:"data"`
}

// ListRecipes returns the recipe list for a user. A backend 404 means
// the user has no recipes yet and maps to ErrNoRecipes so callers can
// render an empty state instead of a failure.
func (c *Client) ListRecipes(ctx context.Context, userID string) ([]Recipe, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/recipes/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var env recipesEnvelope
	if err := c.do(req, &env); err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound {
			return nil, ErrNoRecipes
		}
		return nil, err
	}
	return env.Data, nil
}
