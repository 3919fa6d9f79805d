package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the budgets of a month, ordered by category.
	ListBudgets(ctx context.Context, month domain.Month) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// UpsertBudget creates the budget for (category, month) or replaces its amount.
	UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, error)

	// CreateBudget creates a budget and fails with apperrors.ErrConflict if the
	// (category, month) pair already has one.
	CreateBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
