package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newSQLiteTransactionRepository(db),
		BudgetRepo:      newSQLiteBudgetRepository(db),
		Health:          &BaseRepository{DB: db},
	}
}
