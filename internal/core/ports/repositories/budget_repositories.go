package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget by its ID.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// FindBudgetsByMonth retrieves every budget of a "YYYY-MM" month, ordered by category.
	FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget inserts a new budget. It returns apperrors.ErrConflict when a
	// budget for the same category and month already exists.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpsertBudget atomically inserts the budget or, when one exists for the
	// same category and month, replaces its amount. The stored row is returned.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
