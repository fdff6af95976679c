package model

import "github.com/shopspring/decimal"

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
	FriendshipBlocked  FriendshipStatus = "BLOCKED"
	FriendshipNone     FriendshipStatus = "NONE"
)

type RankTier string

const (
	TierBronze   RankTier = "BRONZE"
	TierSilver   RankTier = "SILVER"
	TierGold     RankTier = "GOLD"
	TierPlatinum RankTier = "PLATINUM"
	TierDiamond  RankTier = "DIAMOND"
)

type FriendProfile struct {
	UserID             string           `json:"userId"`
	Username           string           `json:"username"`
	FullName           string           `json:"fullName"`
	Avatar             string           `json:"avatar,omitempty"`
	Email              string           `json:"email"`
	FriendshipStatus   FriendshipStatus `json:"friendshipStatus"`
	MutualFriendsCount int              `json:"mutualFriendsCount"`
	SharedGoalsCount   int              `json:"sharedGoalsCount"`
	IsOnline           bool             `json:"isOnline"`
	RankTier           RankTier         `json:"rankTier,omitempty"`
}

type LeaderboardEntry struct {
	UserID      string          `json:"userId"`
	FullName    string          `json:"fullName"`
	Username    string          `json:"username"`
	TotalWealth decimal.Decimal `json:"totalWealth"`
	RankTier    RankTier        `json:"rankTier"`
}
