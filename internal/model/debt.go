package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DebtType string

const (
	DebtLend   DebtType = "LEND"
	DebtBorrow DebtType = "BORROW"
)

type DebtStatus string

const (
	DebtActive DebtStatus = "ACTIVE"
	DebtPaid   DebtStatus = "PAID"
)

// Debt is a personal IOU tracked outside of goals: money lent to or
// borrowed from a named person, settled in one piece.
type Debt struct {
	ID           string          `json:"id"`
	PersonName   string          `json:"personName"`
	Amount       decimal.Decimal `json:"amount"`
	Type         DebtType        `json:"type"`
	DueDate      time.Time       `json:"dueDate"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Status       DebtStatus      `json:"status"`
	Note         string          `json:"note"`
}

func (d *Debt) Settled() bool {
	return d.Status == DebtPaid
}
