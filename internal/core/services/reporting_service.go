package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/rollup"
	"golang.org/x/sync/errgroup"
)

type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
}

// NewReportingService creates the service behind the chart and dashboard endpoints.
func NewReportingService(transactionRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader) portssvc.ReportingService {
	return &reportingService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) CategoryBreakdown(ctx context.Context, month domain.Month) (*domain.CategoryBreakdown, error) {
	txns, err := s.transactionRepo.FindTransactions(ctx, domain.MonthFilter(month))
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for category breakdown",
			slog.String("month", month.String()))
		return nil, err
	}

	breakdown := rollup.CategoryBreakdown(txns, month.Start(), month.End())
	s.LogDebug(ctx, "Category breakdown computed",
		slog.String("month", month.String()),
		slog.Int("groups", len(breakdown.Groups)))
	return &breakdown, nil
}

func (s *reportingService) MonthlySeries(ctx context.Context, now time.Time, months int) ([]domain.MonthlyAmount, error) {
	if months < 1 || months > domain.MaxSeriesMonths {
		return nil, apperrors.NewValidationError("months must be between 1 and %d", domain.MaxSeriesMonths)
	}

	to := now.UTC()
	from := to.AddDate(0, -months, 0)
	txns, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{From: &from, To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly series",
			slog.Int("months", months))
		return nil, err
	}

	return rollup.MonthlySeries(txns, from, to), nil
}

func (s *reportingService) BudgetComparison(ctx context.Context, month domain.Month) ([]domain.BudgetComparisonRow, error) {
	var (
		budgets []domain.Budget
		txns    []domain.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.FindBudgetsByMonth(gctx, month.String())
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = s.transactionRepo.FindTransactions(gctx, domain.MonthFilter(month))
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load data for budget comparison",
			slog.String("month", month.String()))
		return nil, err
	}

	return rollup.ReconcileBudgets(budgets, txns, month), nil
}

func (s *reportingService) Summary(ctx context.Context, month domain.Month) (*domain.SpendingSummary, error) {
	txns, err := s.transactionRepo.FindTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, err
	}

	summary := rollup.Summarize(txns, month)
	return &summary, nil
}
