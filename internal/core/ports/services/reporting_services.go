package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ReportingService defines the chart and dashboard read models
type ReportingService interface {
	// CategoryBreakdown sums the month's spend per category, largest first
	CategoryBreakdown(ctx context.Context, month domain.Month) (*domain.CategoryBreakdown, error)

	// MonthlySeries sums spend per month over the trailing months ending at now
	MonthlySeries(ctx context.Context, now time.Time, months int) ([]domain.MonthlyAmount, error)

	// BudgetComparison reconciles the month's budgets against actual spend
	BudgetComparison(ctx context.Context, month domain.Month) ([]domain.BudgetComparisonRow, error)

	// Summary computes the dashboard headline numbers
	Summary(ctx context.Context, month domain.Month) (*domain.SpendingSummary, error)
}
