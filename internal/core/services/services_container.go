package services

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Budget:      NewBudgetService(repos.BudgetRepo),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.BudgetRepo),
		Categories:  domain.NewCategoryCatalog(),
		Health:      repos.Health,
	}
}
