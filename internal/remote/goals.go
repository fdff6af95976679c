package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"fundmate/appcore/internal/model"
)

func (c *Client) Goals(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&goals).
		Get("/goals")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}
	return goals, nil
}

func (c *Client) Goal(ctx context.Context, goalID string) (*model.Goal, error) {
	var goal model.Goal
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&goal).
		Get("/goals/" + goalID)
	if err := c.check(resp, err); err != nil {
		if resp.StatusCode() == http.StatusNotFound {
			return nil, fmt.Errorf("goal %s: %w", goalID, model.ErrGoalNotFound)
		}
		return nil, fmt.Errorf("failed to fetch goal %s: %w", goalID, err)
	}
	return &goal, nil
}

func (c *Client) CreateGoal(
	ctx context.Context,
	req model.GoalRequest,
) (*model.Goal, error) {
	var goal model.Goal
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&goal).
		Post("/goals")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

func (c *Client) AddMember(
	ctx context.Context,
	goalID string,
	req model.MemberRequest,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/goals/" + goalID + "/members")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to add member to goal %s: %w", goalID, err)
	}
	return nil
}

func (c *Client) Settlements(
	ctx context.Context,
	goalID string,
) ([]model.Settlement, error) {
	var settlements []model.Settlement
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&settlements).
		Get("/goals/" + goalID + "/settlements")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf(
			"failed to fetch settlements for goal %s: %w", goalID, err)
	}
	return settlements, nil
}

func (c *Client) InviteToGoal(
	ctx context.Context,
	goalID string,
	req model.InviteRequest,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/goals/" + goalID + "/invite")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to invite to goal %s: %w", goalID, err)
	}
	return nil
}

func (c *Client) PendingInvitations(
	ctx context.Context,
) ([]model.GoalInvitation, error) {
	var invitations []model.GoalInvitation
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&invitations).
		Get("/goals/invitations/pending")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch pending invitations: %w", err)
	}
	return invitations, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, invitationID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/goals/invitations/" + invitationID + "/accept")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf(
			"failed to accept invitation %s: %w", invitationID, err)
	}
	return nil
}

func (c *Client) DeclineInvitation(ctx context.Context, invitationID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/goals/invitations/" + invitationID + "/decline")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf(
			"failed to decline invitation %s: %w", invitationID, err)
	}
	return nil
}

// Contribute deposits amount into the goal's pool. The wire format is a
// bare JSON number body.
func (c *Client) Contribute(
	ctx context.Context,
	goalID string,
	amount decimal.Decimal,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(amount).
		Post("/goals/" + goalID + "/contribute")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to contribute to goal %s: %w", goalID, err)
	}
	return nil
}
