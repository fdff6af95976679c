// Package approval classifies withdrawal requests under the unanimity
// policy: a request is approved only when every member approves, and a
// single rejection finalizes it regardless of the remaining votes. All
// functions are pure; they never mutate the request.
package approval

import (
	"fundmate/appcore/internal/model"
)

// ComputeStatus derives the request status from its approval entries.
// Rejection short-circuits approval: one rejected entry makes the request
// REJECTED even if every other entry is approved.
func ComputeStatus(req *model.WithdrawalRequest) model.ApprovalStatus {
	if len(req.Approvals) == 0 {
		return model.StatusPending
	}

	allApproved := true
	for i := range req.Approvals {
		switch req.Approvals[i].Status {
		case model.StatusRejected:
			return model.StatusRejected
		case model.StatusPending:
			allApproved = false
		}
	}

	if allApproved {
		return model.StatusApproved
	}
	return model.StatusPending
}

// CanAct reports whether userID may still vote on the request: the request
// must be PENDING and the user's own entry must exist and be PENDING.
// Votes are final, members who already decided cannot act again.
func CanAct(req *model.WithdrawalRequest, userID string) bool {
	if req.Status != model.StatusPending {
		return false
	}

	entry := req.Approval(userID)
	return entry != nil && entry.Status == model.StatusPending
}

// PendingVoterCount is the number of members whose decision is still
// outstanding ("waiting on N members").
func PendingVoterCount(req *model.WithdrawalRequest) int {
	n := 0
	for i := range req.Approvals {
		if req.Approvals[i].Status == model.StatusPending {
			n++
		}
	}
	return n
}
