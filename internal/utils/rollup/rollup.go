// Package rollup holds the pure aggregation rules behind the chart endpoints.
// Every function works on in-memory slices, performs no I/O and never fails:
// empty input yields empty output.
package rollup

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PercentagePlaces is the precision of budget usage percentages.
const PercentagePlaces = 1

var hundred = decimal.NewFromInt(100)

// inWindow reports whether t lies within [from, to], both ends inclusive.
func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// CategoryBreakdown sums the transactions dated within [from, to] per category.
// Categories without spend are omitted. Groups are ordered by amount, largest
// first; equal amounts keep the order in which the category was first seen.
func CategoryBreakdown(txns []domain.Transaction, from, to time.Time) domain.CategoryBreakdown {
	sums := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category

	for _, t := range txns {
		if !inWindow(t.Date, from, to) {
			continue
		}
		sum, seen := sums[t.Category]
		if !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sum.Add(t.Amount)
	}

	groups := make([]domain.CategoryAmount, 0, len(order))
	total := decimal.Zero
	for _, c := range order {
		amount := sums[c]
		groups = append(groups, domain.CategoryAmount{Category: c, Amount: amount})
		total = total.Add(amount)
	}

	slices.SortStableFunc(groups, func(a, b domain.CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	return domain.CategoryBreakdown{Groups: groups, Total: total}
}

// MonthlySeries sums the transactions dated within [from, to] per UTC
// "YYYY-MM" month. The series is sparse: months without spend are omitted,
// so consumers must not assume contiguous months.
func MonthlySeries(txns []domain.Transaction, from, to time.Time) []domain.MonthlyAmount {
	sums := make(map[string]decimal.Decimal)

	for _, t := range txns {
		if !inWindow(t.Date, from, to) {
			continue
		}
		key := t.Date.UTC().Format(domain.MonthLayout)
		sums[key] = sums[key].Add(t.Amount)
	}

	series := make([]domain.MonthlyAmount, 0, len(sums))
	for month, amount := range sums {
		series = append(series, domain.MonthlyAmount{Month: month, Amount: amount})
	}

	// "YYYY-MM" sorts chronologically as plain text.
	slices.SortFunc(series, func(a, b domain.MonthlyAmount) int {
		return strings.Compare(a.Month, b.Month)
	})

	return series
}

// ReconcileBudgets joins the month's budgets with the month's actual spend.
// Every category present in either input appears exactly once: budgeted
// categories first in budget order, then spent-but-unbudgeted categories in
// breakdown order. Budgets for other months are ignored.
func ReconcileBudgets(budgets []domain.Budget, txns []domain.Transaction, month domain.Month) []domain.BudgetComparisonRow {
	breakdown := CategoryBreakdown(txns, month.Start(), month.End())
	actual := make(map[domain.Category]decimal.Decimal, len(breakdown.Groups))
	for _, g := range breakdown.Groups {
		actual[g.Category] = g.Amount
	}

	target := month.String()
	rows := make([]domain.BudgetComparisonRow, 0, len(budgets)+len(breakdown.Groups))
	budgeted := make(map[domain.Category]bool, len(budgets))

	for _, b := range budgets {
		if b.Month != target || budgeted[b.Category] {
			continue
		}
		budgeted[b.Category] = true

		spent := actual[b.Category]
		rows = append(rows, domain.BudgetComparisonRow{
			Category:   b.Category,
			Budget:     b.Amount,
			Actual:     spent,
			Difference: b.Amount.Sub(spent),
			Percentage: usagePercentage(spent, b.Amount),
		})
	}

	for _, g := range breakdown.Groups {
		if budgeted[g.Category] {
			continue
		}
		rows = append(rows, domain.BudgetComparisonRow{
			Category:   g.Category,
			Budget:     decimal.Zero,
			Actual:     g.Amount,
			Difference: g.Amount.Neg(),
			Percentage: "0",
		})
	}

	return rows
}

// usagePercentage renders actual/budget*100 with one decimal place.
// It is "0" whenever nothing was spent or the budget is not positive.
func usagePercentage(actual, budget decimal.Decimal) string {
	if !actual.IsPositive() || !budget.IsPositive() {
		return "0"
	}
	return actual.Div(budget).Mul(hundred).StringFixed(PercentagePlaces)
}

// Summarize computes the dashboard headline numbers over all transactions,
// plus the spend that falls within month.
func Summarize(txns []domain.Transaction, month domain.Month) domain.SpendingSummary {
	total := decimal.Zero
	monthly := decimal.Zero
	from, to := month.Start(), month.End()

	for _, t := range txns {
		total = total.Add(t.Amount)
		if inWindow(t.Date, from, to) {
			monthly = monthly.Add(t.Amount)
		}
	}

	summary := domain.SpendingSummary{
		TotalExpenses:      total,
		TransactionCount:   len(txns),
		AverageTransaction: decimal.Zero,
		MonthlyExpenses:    monthly,
	}
	if len(txns) > 0 {
		summary.AverageTransaction = total.Div(decimal.NewFromInt(int64(len(txns)))).Round(domain.AmountPlaces)
	}
	return summary
}
