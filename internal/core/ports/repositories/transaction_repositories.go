package repositories

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
// Every read is owner-scoped: a transaction id belonging to a different
// user behaves exactly like a missing id (apperrors.ErrNotFound).
type TransactionRepository interface {
	// SaveTransaction persists a new transaction. Every call inserts a
	// new row; there is no duplicate detection.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID returns the transaction with the given id if
	// it belongs to userID, apperrors.ErrNotFound otherwise.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUser returns one page of the user's
	// transactions ordered newest-first, plus the user's total count
	// independent of the page size.
	FindTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, int64, error)

	// SummarizeByCurrency groups the user's transactions by currency and
	// sums amounts with integer arithmetic, ordered by currency code
	// ascending. The aggregate must be computed in a single query so it
	// is one consistent read relative to concurrent inserts.
	SummarizeByCurrency(ctx context.Context, userID string) ([]domain.CurrencySummary, error)
}
