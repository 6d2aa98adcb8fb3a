package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
	"github.com/trackmint/transaction_tracker/internal/dto"
)

const maxPerPage = 50

// transactionService implements the transaction use-cases on top of the
// transaction repository and the currency registry.
type transactionService struct {
	txnRepo    portsrepo.TransactionRepository
	currencies portssvc.CurrencySvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, currencies portssvc.CurrencySvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		currencies: currencies,
	}
}

// CreateTransaction validates the request, converts the decimal amount
// into integer scale units and persists a new transaction for the user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	currencyCode, err := s.currencies.ValidateCurrency(ctx, req.Currency)
	if err != nil {
		return nil, err
	}

	money, err := domain.NewMoney(req.Amount, currencyCode)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Money:         money,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	return &txn, nil
}

// GetTransaction returns one of the user's transactions. A transaction
// owned by another user is indistinguishable from a missing one.
func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	return txn, nil
}

// ListTransactions returns one page of the user's transactions ordered
// newest-first, plus the total count.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, page, perPage int) ([]domain.Transaction, int64, error) {
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be >= 1", apperrors.ErrValidation)
	}
	if perPage < 1 || perPage > maxPerPage {
		return nil, 0, fmt.Errorf("%w: perPage must be between 1 and %d", apperrors.ErrValidation, maxPerPage)
	}

	offset := (page - 1) * perPage
	txns, total, err := s.txnRepo.FindTransactionsByUser(ctx, userID, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	return txns, total, nil
}

// SummarizeByCurrency returns the user's per-currency totals ordered by
// currency code. The sum is computed by the store with integer
// arithmetic; no floating-point accumulation happens anywhere.
func (s *transactionService) SummarizeByCurrency(ctx context.Context, userID string) ([]domain.CurrencySummary, error) {
	summaries, err := s.txnRepo.SummarizeByCurrency(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions in service: %w", err)
	}
	if summaries == nil {
		return []domain.CurrencySummary{}, nil
	}
	return summaries, nil
}
