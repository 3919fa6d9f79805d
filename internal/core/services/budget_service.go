package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	now        func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithBudgetClock replaces the clock used for audit timestamps
func WithBudgetClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo: repo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// newBudget validates the request and stamps a fresh id and timestamps.
func (s *budgetService) newBudget(req dto.UpsertBudgetRequest) (domain.Budget, error) {
	now := s.now().UTC().Truncate(domain.TimePrecision)
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		Category:    req.Category,
		Amount:      req.Amount,
		Month:       req.Month,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := budget.Validate(); err != nil {
		return domain.Budget{}, err
	}
	// The tag only checks the shape; ParseMonth rejects "2024-13".
	if _, err := domain.ParseMonth(req.Month); err != nil {
		return domain.Budget{}, err
	}
	return budget, nil
}

func (s *budgetService) UpsertBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, error) {
	budget, err := s.newBudget(req)
	if err != nil {
		s.LogDebug(ctx, "Rejected budget", slog.String("reason", err.Error()))
		return nil, err
	}

	stored, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget",
			slog.String("category", string(budget.Category)),
			slog.String("month", budget.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Budget saved successfully",
		slog.String("budget_id", stored.BudgetID),
		slog.String("category", string(stored.Category)),
		slog.String("month", stored.Month))
	return stored, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.UpsertBudgetRequest) (*domain.Budget, error) {
	budget, err := s.newBudget(req)
	if err != nil {
		s.LogDebug(ctx, "Rejected budget", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to create budget",
			slog.String("category", string(budget.Category)),
			slog.String("month", budget.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.String("month", budget.Month))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, month domain.Month) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.FindBudgetsByMonth(ctx, month.String())
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("month", month.String()))
		return nil, err
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}
