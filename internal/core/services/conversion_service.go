package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
	"github.com/trackmint/transaction_tracker/internal/middleware"
)

// conversionService orchestrates the conversion of a stored
// transaction's amount into a target currency: target validation first,
// then the owner-scoped lookup, then a same-currency short-circuit, and
// at most one call to the external rate converter. The stored
// transaction is never mutated.
type conversionService struct {
	txnRepo    portsrepo.TransactionRepository
	converter  portssvc.RateConverter
	currencies portssvc.CurrencySvcFacade
}

// NewConversionService creates a new ConversionService.
func NewConversionService(txnRepo portsrepo.TransactionRepository, converter portssvc.RateConverter, currencies portssvc.CurrencySvcFacade) portssvc.ConversionSvcFacade {
	return &conversionService{
		txnRepo:    txnRepo,
		converter:  converter,
		currencies: currencies,
	}
}

func (s *conversionService) ConvertTransaction(ctx context.Context, userID, transactionID, targetCurrency string) (*domain.ConversionResult, error) {
	// Validation happens before any store or network access.
	target, err := s.currencies.ValidateCurrency(ctx, targetCurrency)
	if err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for conversion: %w", err)
	}

	// Same-currency short-circuit: no external call, exact original amount.
	if txn.Currency == target {
		return &domain.ConversionResult{
			TransactionID: txn.TransactionID,
			Money:         txn.Money,
			CreatedAt:     txn.CreatedAt,
		}, nil
	}

	convertedUnits, err := s.converter.Convert(ctx, txn.Amount, txn.Currency, target)
	if err != nil {
		// Full detail goes to the log; only the generic classification
		// crosses the boundary.
		middleware.GetLoggerFromCtx(ctx).Error("Currency conversion failed",
			slog.String("transaction_id", transactionID),
			slog.String("from_currency", txn.Currency),
			slog.String("to_currency", target),
			slog.String("error", err.Error()),
		)
		var convErr *apperrors.ConversionError
		if errors.As(err, &convErr) {
			return nil, convErr
		}
		return nil, apperrors.NewConversionError(err.Error())
	}

	return &domain.ConversionResult{
		TransactionID: txn.TransactionID,
		Money:         domain.MoneyFromUnits(convertedUnits, target),
		CreatedAt:     txn.CreatedAt,
	}, nil
}
