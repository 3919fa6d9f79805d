package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertBudgetRequest defines the data needed to set a monthly budget.
type UpsertBudgetRequest struct {
	Category domain.Category `json:"category" binding:"required,category"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Month    string          `json:"month" binding:"required,yearmonth"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID  string          `json:"id"`
	Category  domain.Category `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BudgetEnvelope wraps a single budget.
type BudgetEnvelope struct {
	Budget BudgetResponse `json:"budget"`
}

// ListBudgetsResponse wraps the budgets of one month.
type ListBudgetsResponse struct {
	Month   string           `json:"month"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:  b.BudgetID,
		Category:  b.Category,
		Amount:    b.Amount,
		Month:     b.Month,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToListBudgetsResponse converts the budgets of month to the list DTO
func ToListBudgetsResponse(month domain.Month, budgets []domain.Budget) ListBudgetsResponse {
	res := ListBudgetsResponse{
		Month:   month.String(),
		Budgets: make([]BudgetResponse, len(budgets)),
	}
	for i := range budgets {
		res.Budgets[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
