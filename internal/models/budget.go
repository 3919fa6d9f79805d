package models

import "github.com/shopspring/decimal"

// Budget is the persisted shape of a monthly category budget.
// (category, month) carries a unique constraint.
type Budget struct {
	BudgetID string          `db:"budget_id"` // Primary Key (UUID)
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"` // CHECK (amount > 0)
	Month    string          `db:"month"`  // "YYYY-MM"
	AuditFields
}
