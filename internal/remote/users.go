package remote

import (
	"context"
	"fmt"
	"net/http"

	"fundmate/appcore/internal/model"
)

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/me")
	if err := c.check(resp, err); err != nil {
		if resp.StatusCode() == http.StatusNotFound {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

func (c *Client) FinancialHealth(
	ctx context.Context,
) (*model.FinancialHealth, error) {
	var health model.FinancialHealth
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/financial-health")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch financial health: %w", err)
	}
	return &health, nil
}
