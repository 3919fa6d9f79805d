package rollup

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(amount string, category domain.Category, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: fmt.Sprintf("%s-%s-%d", category, amount, date.UnixNano()),
		Amount:        decimal.RequireFromString(amount),
		Description:   "test",
		Date:          date,
		Category:      category,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func mustMonth(t *testing.T, s string) domain.Month {
	t.Helper()
	m, err := domain.ParseMonth(s)
	require.NoError(t, err)
	return m
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	m := mustMonth(t, "2024-12")

	got := CategoryBreakdown(nil, m.Start(), m.End())

	assert.NotNil(t, got.Groups)
	assert.Empty(t, got.Groups)
	assert.True(t, got.Total.IsZero())
}

func TestCategoryBreakdown_GroupsSortsAndFilters(t *testing.T) {
	m := mustMonth(t, "2024-12")
	txns := []domain.Transaction{
		txn("800", domain.CategoryFoodDining, day(2024, 12, 3)),
		txn("120.50", domain.CategoryTransportation, day(2024, 12, 4)),
		txn("350", domain.CategoryFoodDining, day(2024, 12, 9)),
		txn("2200", domain.CategoryShopping, day(2024, 12, 20)),
		txn("999", domain.CategoryShopping, day(2024, 11, 30)), // outside window
		txn("45.99", domain.CategoryTravel, day(2025, 1, 1)),   // outside window
	}

	got := CategoryBreakdown(txns, m.Start(), m.End())

	require.Len(t, got.Groups, 3)
	assert.Equal(t, domain.CategoryShopping, got.Groups[0].Category)
	assertDecimal(t, "2200", got.Groups[0].Amount)
	assert.Equal(t, domain.CategoryFoodDining, got.Groups[1].Category)
	assertDecimal(t, "1150", got.Groups[1].Amount)
	assert.Equal(t, domain.CategoryTransportation, got.Groups[2].Category)
	assertDecimal(t, "120.5", got.Groups[2].Amount)
	assertDecimal(t, "3470.5", got.Total)
}

func TestCategoryBreakdown_WindowIsInclusive(t *testing.T) {
	m := mustMonth(t, "2024-02")
	txns := []domain.Transaction{
		txn("10", domain.CategoryOther, m.Start()),
		txn("20", domain.CategoryOther, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)),
		txn("40", domain.CategoryOther, m.Next().Start()),
	}

	got := CategoryBreakdown(txns, m.Start(), m.End())

	require.Len(t, got.Groups, 1)
	assertDecimal(t, "30", got.Groups[0].Amount)
}

func TestCategoryBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	m := mustMonth(t, "2024-12")
	txns := []domain.Transaction{
		txn("50", domain.CategoryTravel, day(2024, 12, 1)),
		txn("50", domain.CategoryEducation, day(2024, 12, 2)),
		txn("50", domain.CategoryGroceries, day(2024, 12, 3)),
	}

	for i := 0; i < 5; i++ {
		got := CategoryBreakdown(txns, m.Start(), m.End())
		require.Len(t, got.Groups, 3)
		assert.Equal(t, domain.CategoryTravel, got.Groups[0].Category)
		assert.Equal(t, domain.CategoryEducation, got.Groups[1].Category)
		assert.Equal(t, domain.CategoryGroceries, got.Groups[2].Category)
	}
}

func TestCategoryBreakdown_TotalMatchesWindowSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := domain.Categories()
	m := mustMonth(t, "2024-06")

	for round := 0; round < 50; round++ {
		var txns []domain.Transaction
		want := decimal.Zero
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			date := time.Date(2024, time.Month(4+rng.Intn(5)), 1+rng.Intn(28), rng.Intn(24), 0, 0, 0, time.UTC)
			// Mill-level amounts exercise sums that do not land on whole cents.
			amount := decimal.New(int64(1+rng.Intn(100000)), -3)
			txns = append(txns, domain.Transaction{Amount: amount, Category: cats[rng.Intn(len(cats))], Date: date})
			if inWindow(date, m.Start(), m.End()) {
				want = want.Add(amount)
			}
		}

		got := CategoryBreakdown(txns, m.Start(), m.End())

		sum := decimal.Zero
		for _, g := range got.Groups {
			sum = sum.Add(g.Amount)
		}
		assert.True(t, want.Equal(sum), "round %d: groups sum %s, window sum %s", round, sum, want)
		assert.True(t, want.Equal(got.Total), "round %d: total %s, window sum %s", round, got.Total, want)
	}
}

func TestReconcileBudgets_SmallSpendIsNotLost(t *testing.T) {
	m := mustMonth(t, "2024-06")
	budgets := []domain.Budget{{Category: domain.CategoryFoodDining, Amount: decimal.NewFromInt(1), Month: "2024-06"}}
	txns := []domain.Transaction{txn("0.004", domain.CategoryFoodDining, day(2024, 6, 3))}

	rows := ReconcileBudgets(budgets, txns, m)

	require.Len(t, rows, 1)
	assert.True(t, decimal.RequireFromString("0.004").Equal(rows[0].Actual), "actual %s", rows[0].Actual)
	assert.Equal(t, "0.4", rows[0].Percentage)
}

func TestMonthlySeries_SparseAndSorted(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)
	from := now.AddDate(0, -12, 0)
	txns := []domain.Transaction{
		txn("100", domain.CategoryOther, day(2024, 12, 1)),
		txn("200", domain.CategoryOther, day(2024, 3, 5)),
		txn("50.25", domain.CategoryGroceries, day(2024, 3, 20)),
		txn("75", domain.CategoryGroceries, day(2023, 12, 16)),
		txn("80", domain.CategoryGroceries, day(2023, 12, 14)), // before window
		txn("90", domain.CategoryGroceries, day(2024, 12, 16)), // after now
	}

	got := MonthlySeries(txns, from, now)

	require.Len(t, got, 3)
	assert.Equal(t, "2023-12", got[0].Month)
	assertDecimal(t, "75", got[0].Amount)
	assert.Equal(t, "2024-03", got[1].Month)
	assertDecimal(t, "250.25", got[1].Amount)
	assert.Equal(t, "2024-12", got[2].Month)
	assertDecimal(t, "100", got[2].Amount)
}

func TestMonthlySeries_Empty(t *testing.T) {
	now := time.Now().UTC()
	got := MonthlySeries(nil, now.AddDate(0, -12, 0), now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMonthlySeries_StaysInWindowWithoutDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	from := now.AddDate(0, -12, 0)
	lo := from.Format(domain.MonthLayout)
	hi := now.Format(domain.MonthLayout)

	var txns []domain.Transaction
	for i := 0; i < 500; i++ {
		date := now.AddDate(0, 0, -rng.Intn(800)+30)
		txns = append(txns, domain.Transaction{Amount: decimal.NewFromInt(int64(1 + rng.Intn(500))), Category: domain.CategoryOther, Date: date})
	}

	got := MonthlySeries(txns, from, now)

	seen := map[string]bool{}
	for i, point := range got {
		assert.False(t, seen[point.Month], "duplicate month %s", point.Month)
		seen[point.Month] = true
		assert.GreaterOrEqual(t, point.Month, lo)
		assert.LessOrEqual(t, point.Month, hi)
		if i > 0 {
			assert.Less(t, got[i-1].Month, point.Month)
		}
	}
}

func TestReconcileBudgets_BudgetedCategory(t *testing.T) {
	m := mustMonth(t, "2024-12")
	budgets := []domain.Budget{{Category: domain.CategoryFoodDining, Amount: decimal.NewFromInt(5000), Month: "2024-12"}}
	txns := []domain.Transaction{
		txn("800", domain.CategoryFoodDining, day(2024, 12, 5)),
		txn("350", domain.CategoryFoodDining, day(2024, 12, 18)),
	}

	rows := ReconcileBudgets(budgets, txns, m)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.CategoryFoodDining, rows[0].Category)
	assertDecimal(t, "5000", rows[0].Budget)
	assertDecimal(t, "1150", rows[0].Actual)
	assertDecimal(t, "3850", rows[0].Difference)
	assert.Equal(t, "23.0", rows[0].Percentage)
}

func TestReconcileBudgets_SpendWithoutBudget(t *testing.T) {
	m := mustMonth(t, "2024-12")
	txns := []domain.Transaction{txn("2200", domain.CategoryShopping, day(2024, 12, 7))}

	rows := ReconcileBudgets(nil, txns, m)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.CategoryShopping, rows[0].Category)
	assert.True(t, rows[0].Budget.IsZero())
	assertDecimal(t, "2200", rows[0].Actual)
	assertDecimal(t, "-2200", rows[0].Difference)
	assert.Equal(t, "0", rows[0].Percentage)
}

func TestReconcileBudgets_BudgetWithoutSpend(t *testing.T) {
	m := mustMonth(t, "2024-12")
	budgets := []domain.Budget{{Category: domain.CategoryTravel, Amount: decimal.NewFromInt(8000), Month: "2024-12"}}

	rows := ReconcileBudgets(budgets, nil, m)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Actual.IsZero())
	assertDecimal(t, "8000", rows[0].Difference)
	assert.Equal(t, "0", rows[0].Percentage)
}

func TestReconcileBudgets_PercentageRounding(t *testing.T) {
	m := mustMonth(t, "2024-12")
	budgets := []domain.Budget{
		{Category: domain.CategoryGroceries, Amount: decimal.NewFromInt(3), Month: "2024-12"},
		{Category: domain.CategoryEntertainment, Amount: decimal.NewFromInt(2000), Month: "2024-12"},
	}
	txns := []domain.Transaction{
		txn("2", domain.CategoryGroceries, day(2024, 12, 1)),
		txn("2500", domain.CategoryEntertainment, day(2024, 12, 1)),
	}

	rows := ReconcileBudgets(budgets, txns, m)

	require.Len(t, rows, 2)
	assert.Equal(t, "66.7", rows[0].Percentage)
	assert.Equal(t, "125.0", rows[1].Percentage)
	assertDecimal(t, "-500", rows[1].Difference)
}

func TestReconcileBudgets_UnionWithoutDuplicates(t *testing.T) {
	m := mustMonth(t, "2024-12")
	budgets := []domain.Budget{
		{Category: domain.CategoryFoodDining, Amount: decimal.NewFromInt(5000), Month: "2024-12"},
		{Category: domain.CategoryGroceries, Amount: decimal.NewFromInt(8000), Month: "2024-12"},
		{Category: domain.CategoryTravel, Amount: decimal.NewFromInt(100), Month: "2024-11"}, // other month
	}
	txns := []domain.Transaction{
		txn("10", domain.CategoryFoodDining, day(2024, 12, 2)),
		txn("20", domain.CategoryShopping, day(2024, 12, 3)),
		txn("30", domain.CategoryTravel, day(2024, 12, 4)),
		txn("40", domain.CategoryEducation, day(2024, 11, 4)), // other month
	}

	rows := ReconcileBudgets(budgets, txns, m)

	got := map[domain.Category]int{}
	for _, r := range rows {
		got[r.Category]++
	}
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryFoodDining: 1,
		domain.CategoryGroceries:  1,
		domain.CategoryShopping:   1,
		domain.CategoryTravel:     1,
	}, got)

	// budgeted categories come first
	assert.Equal(t, domain.CategoryFoodDining, rows[0].Category)
	assert.Equal(t, domain.CategoryGroceries, rows[1].Category)
	assert.Equal(t, domain.CategoryTravel, rows[2].Category)
	assert.Equal(t, domain.CategoryShopping, rows[3].Category)
	assert.True(t, rows[2].Budget.IsZero())
}

func TestSummarize(t *testing.T) {
	m := mustMonth(t, "2024-12")
	txns := []domain.Transaction{
		txn("250.50", domain.CategoryGroceries, day(2024, 12, 1)),
		txn("45.99", domain.CategoryTransportation, day(2024, 12, 3)),
		txn("325.75", domain.CategoryBillsUtilities, day(2024, 11, 28)),
	}

	got := Summarize(txns, m)

	assertDecimal(t, "622.24", got.TotalExpenses)
	assert.Equal(t, 3, got.TransactionCount)
	assertDecimal(t, "207.41", got.AverageTransaction)
	assertDecimal(t, "296.49", got.MonthlyExpenses)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, mustMonth(t, "2024-12"))

	assert.True(t, got.TotalExpenses.IsZero())
	assert.Zero(t, got.TransactionCount)
	assert.True(t, got.AverageTransaction.IsZero())
	assert.True(t, got.MonthlyExpenses.IsZero())
}
