package services

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
	"github.com/trackmint/transaction_tracker/internal/dto"
)

// TransactionSvcFacade defines the transaction use-cases exposed to the
// handler layer. All operations are scoped to the authenticated user.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction for
	// userID and returns the stored record.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransaction returns one of the user's transactions by id.
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page of the user's transactions
	// (newest first) and the total count. page starts at 1; perPage is
	// bounded to [1, 50].
	ListTransactions(ctx context.Context, userID string, page, perPage int) ([]domain.Transaction, int64, error)

	// SummarizeByCurrency returns the user's per-currency totals ordered
	// by currency code ascending; empty when the user has none.
	SummarizeByCurrency(ctx context.Context, userID string) ([]domain.CurrencySummary, error)
}
