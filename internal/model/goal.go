package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	IsLocked      bool            `json:"isLocked"`
	Members       []GoalMember    `json:"members"`
}

// Member returns the member entry for userID, or nil if the user is not
// part of the goal.
func (g *Goal) Member(userID string) *GoalMember {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}

type GoalMember struct {
	UserID            string          `json:"userId"`
	UserName          string          `json:"userName"`
	ContributedAmount decimal.Decimal `json:"contributedAmount"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	Role              MemberRole      `json:"role"`
}

type GoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

type MemberRequest struct {
	Username     string          `json:"username"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Role         string          `json:"role"`
}

// GoalInvitation is a pending offer to join a shared goal. Its arrival is
// pushed as a GOAL_INVITE event; it is answered with AcceptInvitation or
// DeclineInvitation.
type GoalInvitation struct {
	ID        string     `json:"id"`
	Goal      Goal       `json:"goal"`
	InvitedBy User       `json:"invitedBy"`
	Role      MemberRole `json:"role"`
	Message   string     `json:"message,omitempty"`
	InvitedAt time.Time  `json:"invitedAt"`
}

type InviteRequest struct {
	UserID  string     `json:"userId"`
	Role    MemberRole `json:"role"`
	Message string     `json:"message,omitempty"`
}

// Settlement describes who owes whom to even out member contributions.
type Settlement struct {
	FromUserID   string          `json:"fromUserId"`
	FromUserName string          `json:"fromUserName"`
	ToUserID     string          `json:"toUserId"`
	ToUserName   string          `json:"toUserName"`
	Amount       decimal.Decimal `json:"amount"`
}

type MemberRole int

const (
	RoleOwner MemberRole = iota
	RoleMember
	RoleViewer
)

func (r MemberRole) String() string {
	switch r {
	case RoleOwner:
		return "OWNER"
	case RoleMember:
		return "MEMBER"
	case RoleViewer:
		return "VIEWER"
	default:
		return "UNKNOWN"
	}
}

func (r MemberRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *MemberRole) UnmarshalText(text []byte) error {
	switch string(text) {
	case "OWNER":
		*r = RoleOwner
	case "MEMBER":
		*r = RoleMember
	case "VIEWER":
		*r = RoleViewer
	default:
		return fmt.Errorf("unknown member role %q", string(text))
	}
	return nil
}
