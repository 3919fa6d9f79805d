package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

const budgetColumns = `budget_id, category, amount, month, created_at, updated_at`

type SQLiteBudgetRepository struct {
	BaseRepository
}

func newSQLiteBudgetRepository(db *sql.DB) portsrepo.BudgetRepositoryFacade {
	return &SQLiteBudgetRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BudgetRepositoryFacade = (*SQLiteBudgetRepository)(nil)

func scanBudget(row rowScanner) (models.Budget, error) {
	var m models.Budget
	var createdAt, updatedAt string
	if err := row.Scan(&m.BudgetID, &m.Category, &m.Amount, &m.Month, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

// SaveBudget inserts a budget; a second row for the same (category, month) is a conflict.
func (r *SQLiteBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `INSERT INTO budgets (` + budgetColumns + `) VALUES (?, ?, ?, ?, ?, ?);`
	_, err := r.DB.ExecContext(ctx, query,
		m.BudgetID,
		m.Category,
		m.Amount.String(),
		m.Month,
		formatTime(m.CreatedAt),
		formatTime(m.UpdatedAt),
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save budget %s/%s", m.Category, m.Month))
	}
	return nil
}

// UpsertBudget inserts or replaces the amount of the (category, month) budget in one statement.
func (r *SQLiteBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (category, month) DO UPDATE SET
			amount = excluded.amount,
			updated_at = excluded.updated_at
		RETURNING ` + budgetColumns + `;
	`
	stored, err := scanBudget(r.DB.QueryRowContext(ctx, query,
		m.BudgetID,
		m.Category,
		m.Amount.String(),
		m.Month,
		formatTime(m.CreatedAt),
		formatTime(m.UpdatedAt),
	))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to upsert budget %s/%s", m.Category, m.Month))
	}
	d := mapping.ToDomainBudget(stored)
	return &d, nil
}

func (r *SQLiteBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = ?;`
	m, err := scanBudget(r.DB.QueryRowContext(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find budget by ID "+budgetID)
	}
	d := mapping.ToDomainBudget(m)
	return &d, nil
}

func (r *SQLiteBudgetRepository) FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE month = ? ORDER BY category;`
	rows, err := r.DB.QueryContext(ctx, query, month)
	if err != nil {
		return nil, translateError(err, "failed to query budgets for "+month)
	}
	defer rows.Close()

	var modelBudgets []models.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		modelBudgets = append(modelBudgets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "failed to iterate budgets")
	}
	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}
