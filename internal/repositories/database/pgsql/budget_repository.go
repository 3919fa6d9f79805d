package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, category, amount, month, created_at, updated_at`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row rowScanner) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.Category,
		&m.Amount,
		&m.Month,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveBudget inserts a new budget; a duplicate (category, month) is a conflict.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.Category,
		m.Amount,
		m.Month,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save budget %s/%s", m.Category, m.Month))
	}
	return nil
}

// UpsertBudget inserts the budget or replaces the amount of the existing
// (category, month) row in a single statement.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (category, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + budgetColumns + `;
	`
	stored, err := scanBudget(r.Pool.QueryRow(ctx, query,
		m.BudgetID,
		m.Category,
		m.Amount,
		m.Month,
		m.CreatedAt,
		m.UpdatedAt,
	))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to upsert budget %s/%s", m.Category, m.Month))
	}

	d := mapping.ToDomainBudget(stored)
	return &d, nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find budget by ID "+budgetID)
	}

	d := mapping.ToDomainBudget(m)
	return &d, nil
}

// FindBudgetsByMonth retrieves every budget of a month, ordered by category.
func (r *PgxBudgetRepository) FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE month = $1 ORDER BY category;`

	rows, err := r.Pool.Query(ctx, query, month)
	if err != nil {
		return nil, translateError(err, "failed to query budgets for "+month)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		return scanBudget(row)
	})
	if err != nil {
		return nil, translateError(err, "failed to scan budgets")
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}
