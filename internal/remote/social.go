package remote

import (
	"context"
	"fmt"
	"net/url"

	"fundmate/appcore/internal/model"
)

func (c *Client) Friends(ctx context.Context) ([]model.FriendProfile, error) {
	return c.friendList(ctx, "/friends")
}

func (c *Client) PendingFriendRequests(
	ctx context.Context,
) ([]model.FriendProfile, error) {
	return c.friendList(ctx, "/friends/requests")
}

func (c *Client) SearchFriends(
	ctx context.Context,
	query string,
) ([]model.FriendProfile, error) {
	return c.friendList(ctx, "/friends/search?query="+url.QueryEscape(query))
}

func (c *Client) DiscoverUsers(
	ctx context.Context,
) ([]model.FriendProfile, error) {
	return c.friendList(ctx, "/friends/discover")
}

func (c *Client) friendList(
	ctx context.Context,
	path string,
) ([]model.FriendProfile, error) {
	var profiles []model.FriendProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&profiles).
		Get(path)
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	return profiles, nil
}

func (c *Client) SendFriendRequest(ctx context.Context, friendID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(struct{}{}).
		Post("/friends/request/" + friendID)
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to send friend request: %w", err)
	}
	return nil
}

func (c *Client) AcceptFriendRequest(
	ctx context.Context,
	friendshipID string,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Put("/friends/request/" + friendshipID + "/accept")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	return nil
}

func (c *Client) RejectFriendRequest(
	ctx context.Context,
	friendshipID string,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/friends/request/" + friendshipID + "/reject")
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to reject friend request: %w", err)
	}
	return nil
}

func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/friends/" + friendID)
	if err := c.check(resp, err); err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}

func (c *Client) Leaderboard(
	ctx context.Context,
) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&entries).
		Get("/leaderboard")
	if err := c.check(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	return entries, nil
}
