package model

import "github.com/shopspring/decimal"

// FinancialHealth is the server-computed health assessment. The client
// renders it as-is; no scoring happens locally.
type FinancialHealth struct {
	Score          int             `json:"score"`
	Status         string          `json:"status"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	IsAtRisk       bool            `json:"isAtRisk"`

	NetWorth struct {
		Value            decimal.Decimal `json:"value"`
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		Rating           string          `json:"rating"`
		Trend            string          `json:"trend"`
	} `json:"netWorth"`

	Liquidity struct {
		LiquidAssets             decimal.Decimal `json:"liquidAssets"`
		MonthlyEssentialExpenses decimal.Decimal `json:"monthlyEssentialExpenses"`
		Months                   float64         `json:"months"`
		SafetyLevel              string          `json:"safetyLevel"`
		Message                  string          `json:"message"`
	} `json:"liquidity"`

	BudgetRule struct {
		NeedsAmount    decimal.Decimal `json:"needsAmount"`
		NeedsPercent   float64         `json:"needsPercent"`
		WantsAmount    decimal.Decimal `json:"wantsAmount"`
		WantsPercent   float64         `json:"wantsPercent"`
		SavingsAmount  decimal.Decimal `json:"savingsAmount"`
		SavingsPercent float64         `json:"savingsPercent"`
		Compliance     string          `json:"compliance"`
		Message        string          `json:"message"`
	} `json:"budgetRule"`

	Debt struct {
		MonthlyIncome       decimal.Decimal `json:"monthlyIncome"`
		MonthlyDebtPayments decimal.Decimal `json:"monthlyDebtPayments"`
		Ratio               float64         `json:"ratio"`
		RiskLevel           string          `json:"riskLevel"`
		Message             string          `json:"message"`
	} `json:"debt"`

	FinancialFreedom struct {
		MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
		AnnualExpenses  decimal.Decimal `json:"annualExpenses"`
		TargetAmount    decimal.Decimal `json:"targetAmount"`
		CurrentAmount   decimal.Decimal `json:"currentAmount"`
		ProgressPercent float64         `json:"progressPercent"`
		YearsToFreedom  float64         `json:"yearsToFreedom"`
		Message         string          `json:"message"`
	} `json:"financialFreedom"`

	Recommendations []string `json:"recommendations"`
}
