// Package ledger provides the view-model math for goal progress and the
// client-side amount guards. The server stays authoritative on balances;
// these checks only stop obviously bad requests before a network call.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fundmate/appcore/internal/model"
)

const displayCap = 100.0

// ProgressPercent is the display value for a progress bar: 0 when target
// is not positive, otherwise current/target*100 capped at 100.
func ProgressPercent(current, target decimal.Decimal) float64 {
	p := RawProgressRatio(current, target) * 100
	if p > displayCap {
		return displayCap
	}
	return p
}

// RawProgressRatio is the uncapped current/target ratio. Overfunded goals
// report values above 1; callers doing arithmetic use this, never the
// capped display value.
func RawProgressRatio(current, target decimal.Decimal) float64 {
	if target.Sign() <= 0 {
		return 0
	}
	ratio, _ := current.Div(target).Float64()
	return ratio
}

// MemberProgress is a member's own progress toward their personal target,
// independent of the goal-level progress.
func MemberProgress(m model.GoalMember) float64 {
	return ProgressPercent(m.ContributedAmount, m.TargetAmount)
}

// ValidateContribution guards a deposit before any network call.
func ValidateContribution(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}
	return nil
}

// ValidateWithdrawal guards a withdrawal request against the last known
// fund balance before any network call.
func ValidateWithdrawal(amount, balance decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}
	if amount.GreaterThan(balance) {
		return fmt.Errorf(
			"%w: requested %s exceeds balance %s",
			model.ErrInsufficientFunds, amount, balance)
	}
	return nil
}
