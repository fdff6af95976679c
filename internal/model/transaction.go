package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

type Transaction struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Date     time.Time       `json:"date"`
}

type TransactionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Type      TransactionType `json:"type"`
	AccountID string          `json:"accountId"`
}
