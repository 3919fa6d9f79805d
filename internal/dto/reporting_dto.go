package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryGroupResponse is one slice of the category pie chart.
type CategoryGroupResponse struct {
	Category domain.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
}

// CategoryBreakdownResponse represents the category breakdown chart response
type CategoryBreakdownResponse struct {
	Month  string                  `json:"month"`
	Groups []CategoryGroupResponse `json:"groups"`
	Total  decimal.Decimal         `json:"total"`
}

// MonthlySeriesResponse represents the monthly expenses chart response
type MonthlySeriesResponse struct {
	Months int                    `json:"months"`
	Series []domain.MonthlyAmount `json:"series"`
}

// BudgetComparisonResponse represents the budget-vs-actual chart response
type BudgetComparisonResponse struct {
	Month      string                       `json:"month"`
	Comparison []domain.BudgetComparisonRow `json:"comparison"`
}

// SummaryResponse represents the dashboard headline numbers
type SummaryResponse struct {
	Month string `json:"month"`
	domain.SpendingSummary
}

// ToCategoryBreakdownResponse converts a breakdown to a DTO, attaching chart colors
func ToCategoryBreakdownResponse(month domain.Month, b *domain.CategoryBreakdown, catalog *domain.CategoryCatalog) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		Month:  month.String(),
		Groups: make([]CategoryGroupResponse, len(b.Groups)),
		Total:  b.Total,
	}
	for i, g := range b.Groups {
		response.Groups[i] = CategoryGroupResponse{
			Category: g.Category,
			Amount:   g.Amount,
			Color:    catalog.Color(g.Category),
		}
	}
	return response
}

// ToMonthlySeriesResponse converts a monthly series to a DTO
func ToMonthlySeriesResponse(months int, series []domain.MonthlyAmount) MonthlySeriesResponse {
	if series == nil {
		series = []domain.MonthlyAmount{}
	}
	return MonthlySeriesResponse{Months: months, Series: series}
}

// ToBudgetComparisonResponse converts reconciliation rows to a DTO
func ToBudgetComparisonResponse(month domain.Month, rows []domain.BudgetComparisonRow) BudgetComparisonResponse {
	if rows == nil {
		rows = []domain.BudgetComparisonRow{}
	}
	return BudgetComparisonResponse{Month: month.String(), Comparison: rows}
}

// ToSummaryResponse converts a spending summary to a DTO
func ToSummaryResponse(month domain.Month, s *domain.SpendingSummary) SummaryResponse {
	return SummaryResponse{Month: month.String(), SpendingSummary: *s}
}
