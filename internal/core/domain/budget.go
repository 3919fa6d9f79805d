package domain

import (
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Budget is the monthly spending cap for one category.
// (Category, Month) is unique across all budgets.
type Budget struct {
	BudgetID string          `json:"budgetID"`
	Category Category        `json:"category" validate:"required,category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" validate:"required,yearmonth"`
	AuditFields
}

// Validate checks the invariants every stored budget must satisfy.
func (b Budget) Validate() error {
	if !b.Amount.IsPositive() {
		return apperrors.NewValidationError("budget amount must be greater than 0")
	}
	if !hasCentPrecision(b.Amount) {
		return apperrors.NewValidationError("budget amount must have at most %d decimal places", AmountPlaces)
	}
	return validateStruct(b)
}
