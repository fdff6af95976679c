package model

import "github.com/shopspring/decimal"

type AccountType string

const (
	AccountCash       AccountType = "CASH"
	AccountBank       AccountType = "BANK"
	AccountCredit     AccountType = "CREDIT"
	AccountEWallet    AccountType = "E_WALLET"
	AccountInvestment AccountType = "INVESTMENT"
)

type Account struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        AccountType      `json:"type"`
	Balance     decimal.Decimal  `json:"balance"`
	Currency    string           `json:"currency"`
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
	UserID      string           `json:"userId"`
}

type AccountRequest struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Balance     decimal.Decimal  `json:"balance"`
	Currency    string           `json:"currency"`
	CreditLimit *decimal.Decimal `json:"creditLimit,omitempty"`
}
