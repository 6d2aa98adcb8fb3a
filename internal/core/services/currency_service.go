package services

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
)

// currencyService exposes the immutable currency registry through the
// service facade used by handlers and other services.
type currencyService struct {
	registry *domain.CurrencyRegistry
}

// NewCurrencyService creates a new currency service backed by the given
// registry.
func NewCurrencyService(registry *domain.CurrencyRegistry) portssvc.CurrencySvcFacade {
	return &currencyService{registry: registry}
}

func (s *currencyService) ListCurrencies(_ context.Context) []domain.Currency {
	return s.registry.List()
}

func (s *currencyService) ValidateCurrency(_ context.Context, code string) (string, error) {
	return s.registry.Validate(code)
}
