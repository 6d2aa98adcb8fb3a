package services

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

// RateConverter converts an integer scale-unit amount from one currency
// to another via the external exchange-rate provider. Implementations
// make at most one outbound call per invocation, bounded by a timeout,
// and report every failure as a *apperrors.ConversionError; no retries.
type RateConverter interface {
	Convert(ctx context.Context, amountUnits int64, fromCurrency, toCurrency string) (int64, error)
}

// ConversionSvcFacade converts a stored transaction's amount into a
// target currency without mutating the stored record.
type ConversionSvcFacade interface {
	ConvertTransaction(ctx context.Context, userID, transactionID, targetCurrency string) (*domain.ConversionResult, error)
}
