package remote

import (
	"context"
	"fmt"

	"fundmate/appcore/internal/model"
)

func (c *Client) RecordTransaction(
	ctx context.Context,
	req model.TransactionRequest,
) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/transactions")
	if err := c.check(resp, err); err != nil {
		return "", fmt.Errorf("failed to record transaction: %w", err)
	}
	return textBody(resp), nil
}

func (c *Client) RecentTransactions(
	ctx context.Context,
) ([]model.Transaction, error) {
	var transactions []model.Transaction
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&transactions).
		Get("/transactions")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactions, nil
}
