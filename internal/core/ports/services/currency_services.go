package services

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

// CurrencySvcFacade exposes the currency registry to handlers and other
// services.
type CurrencySvcFacade interface {
	// ListCurrencies returns all supported currencies ordered by code.
	ListCurrencies(ctx context.Context) []domain.Currency

	// ValidateCurrency normalizes and validates a currency code,
	// returning apperrors.ErrInvalidCurrencyFormat for a malformed code
	// and apperrors.ErrUnsupportedCurrency for an unknown one.
	ValidateCurrency(ctx context.Context, code string) (string, error)
}
