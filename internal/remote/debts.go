package remote

import (
	"context"
	"fmt"

	"fundmate/appcore/internal/model"
)

func (c *Client) Debts(ctx context.Context) ([]model.Debt, error) {
	var debts []model.Debt
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&debts).
		Get("/debts")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch debts: %w", err)
	}
	return debts, nil
}

// PayDebt marks the debt settled in full. The list is reconciled by the
// next Debts fetch, not patched locally.
func (c *Client) PayDebt(ctx context.Context, debtID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Patch("/debts/" + debtID + "/pay")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to pay debt %s: %w", debtID, err)
	}
	return nil
}
