package remote

import (
	"context"
	"fmt"

	"fundmate/appcore/internal/model"
)

func (c *Client) Withdrawals(
	ctx context.Context,
	goalID string,
) ([]model.WithdrawalRequest, error) {
	var requests []model.WithdrawalRequest
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&requests).
		Get("/goals/" + goalID + "/withdrawals")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf(
			"failed to fetch withdrawals for goal %s: %w", goalID, err)
	}
	return requests, nil
}

func (c *Client) RequestWithdrawal(
	ctx context.Context,
	goalID string,
	payload model.WithdrawalRequestPayload,
) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/goals/" + goalID + "/withdrawals")
	if err := c.check(resp, err); err != nil {
		return "", fmt.Errorf(
			"failed to request withdrawal from goal %s: %w", goalID, err)
	}
	return textBody(resp), nil
}

func (c *Client) ApproveWithdrawal(
	ctx context.Context,
	requestID string,
	decision model.ApprovalStatus,
) error {
	body := struct {
		Status model.ApprovalStatus `json:"status"`
	}{Status: decision}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/goals/withdrawals/" + requestID + "/approve")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf(
			"failed to submit decision for request %s: %w", requestID, err)
	}
	return nil
}
