package services

import (
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(registry *domain.CurrencyRegistry, repos portsrepo.RepositoryProvider, converter portssvc.RateConverter) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The currency service is created first since the transaction and
	// conversion services validate codes through it.
	container.Currency = NewCurrencyService(registry)

	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Currency)
	container.Conversion = NewConversionService(repos.TransactionRepo, converter, container.Currency)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ConversionSvcFacade  = (*conversionService)(nil)
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
)
