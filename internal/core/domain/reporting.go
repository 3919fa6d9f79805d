package domain

import (
	"github.com/shopspring/decimal"
)

// Bounds for the trailing window of the monthly series.
const (
	DefaultSeriesMonths = 12
	MaxSeriesMonths     = 120
)

// CategoryAmount is the summed spend of one category.
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryBreakdown groups a window's spend by category, largest first.
type CategoryBreakdown struct {
	Groups []CategoryAmount `json:"groups"`
	Total  decimal.Decimal  `json:"total"`
}

// MonthlyAmount is the summed spend of one "YYYY-MM" month.
type MonthlyAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// BudgetComparisonRow reconciles one category's budget with its actual spend.
type BudgetComparisonRow struct {
	Category   Category        `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
	Percentage string          `json:"percentage"` // actual/budget*100 to one decimal place
}

// SpendingSummary holds the dashboard headline numbers.
type SpendingSummary struct {
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TransactionCount   int             `json:"transactionCount"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses"`
}
