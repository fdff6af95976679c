package remote

import (
	"context"
	"fmt"

	"fundmate/appcore/internal/model"
)

func (c *Client) Accounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get("/accounts")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

func (c *Client) CreateAccount(
	ctx context.Context,
	req model.AccountRequest,
) (*model.Account, error) {
	var account model.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&account).
		Post("/accounts")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (c *Client) UpdateAccount(
	ctx context.Context,
	accountID string,
	req model.AccountRequest,
) (*model.Account, error) {
	var account model.Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&account).
		Put("/accounts/" + accountID)
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/accounts/" + accountID)
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return nil
}
