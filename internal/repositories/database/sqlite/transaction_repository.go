package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

const transactionColumns = `transaction_id, amount, description, date, category, created_at, updated_at`

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	var date, createdAt, updatedAt string
	if err := row.Scan(&m.TransactionID, &m.Amount, &m.Description, &date, &m.Category, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	if m.Date, err = parseTime(date); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `INSERT INTO transactions (` + transactionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?);`
	_, err := r.DB.ExecContext(ctx, query,
		m.TransactionID,
		m.Amount.String(),
		m.Description,
		formatTime(m.Date),
		m.Category,
		formatTime(m.CreatedAt),
		formatTime(m.UpdatedAt),
	)
	if err != nil {
		return translateError(err, "failed to save transaction "+m.TransactionID)
	}
	return nil
}

func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ?;`
	m, err := scanTransaction(r.DB.QueryRowContext(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err, "failed to find transaction by ID "+transactionID)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *SQLiteTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conds []string
	var args []any
	if filter.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, formatTime(*filter.To))
	}
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.After != nil {
		conds = append(conds, "(date, created_at, transaction_id) < (?, ?, ?)")
		args = append(args, formatTime(filter.After.Date), formatTime(filter.After.CreatedAt), filter.After.TransactionID)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY date DESC, created_at DESC, transaction_id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	query += `;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "failed to query transactions")
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "failed to iterate transactions")
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = ?, description = ?, date = ?, category = ?, updated_at = ?
		WHERE transaction_id = ?
		RETURNING ` + transactionColumns + `;
	`
	stored, err := scanTransaction(r.DB.QueryRowContext(ctx, query,
		m.Amount.String(),
		m.Description,
		formatTime(m.Date),
		m.Category,
		formatTime(m.UpdatedAt),
		m.TransactionID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrNotFound)
		}
		return nil, translateError(err, "failed to update transaction "+m.TransactionID)
	}
	d := mapping.ToDomainTransaction(stored)
	return &d, nil
}

func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?;`, transactionID)
	if err != nil {
		return translateError(err, "failed to delete transaction "+transactionID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateError(err, "failed to read affected rows")
	}
	if n == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}
