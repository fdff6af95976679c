package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound  = errors.New("withdrawal request not found")
	ErrRequestFinalized = errors.New("withdrawal request already finalized")
	ErrAlreadyVoted     = errors.New("member already voted on this request")
)

// WithdrawalRequest is a proposal by one member to remove funds from a
// joint goal's pool. It is created PENDING and becomes APPROVED only when
// every member approves; a single rejection finalizes it as REJECTED.
// Terminal states accept no further votes; re-requesting after a rejection
// requires a brand-new request.
type WithdrawalRequest struct {
	ID            string               `json:"id"`
	GoalID        string               `json:"goalId"`
	RequesterID   string               `json:"requesterId"`
	RequesterName string               `json:"requesterName"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	Status        ApprovalStatus       `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	Approvals     []WithdrawalApproval `json:"approvals"`
}

// Approval returns the approval entry for userID, or nil if the user is
// not part of the approval set.
func (r *WithdrawalRequest) Approval(userID string) *WithdrawalApproval {
	for i := range r.Approvals {
		if r.Approvals[i].UserID == userID {
			return &r.Approvals[i]
		}
	}
	return nil
}

// Clone returns a deep copy, including the approvals slice.
func (r *WithdrawalRequest) Clone() WithdrawalRequest {
	out := *r
	out.Approvals = make([]WithdrawalApproval, len(r.Approvals))
	copy(out.Approvals, r.Approvals)
	return out
}

// WithdrawalApproval is one member's recorded decision on a request. One
// entry exists per goal member, seeded server-side at request creation.
type WithdrawalApproval struct {
	UserID    string         `json:"userId"`
	UserName  string         `json:"userName"`
	Status    ApprovalStatus `json:"status"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// Provenance distinguishes entries patched locally ahead of server
	// confirmation from entries read back from the server. Not part of
	// the wire format.
	Provenance Provenance `json:"-"`
}

type WithdrawalRequestPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type ApprovalStatus int

const (
	StatusPending ApprovalStatus = iota
	StatusApproved
	StatusRejected
)

func (s ApprovalStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusApproved:
		return "APPROVED"
	case StatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s ApprovalStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s ApprovalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ApprovalStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "PENDING":
		*s = StatusPending
	case "APPROVED":
		*s = StatusApproved
	case "REJECTED":
		*s = StatusRejected
	default:
		return fmt.Errorf("unknown approval status %q", string(text))
	}
	return nil
}

// Provenance tags locally patched state so callers can tell provisional
// entries from server-confirmed ones.
type Provenance int

const (
	Confirmed Provenance = iota
	Optimistic
)

func (p Provenance) String() string {
	if p == Optimistic {
		return "OPTIMISTIC"
	}
	return "CONFIRMED"
}
