package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
)

// TransactionRepository persists transactions in PostgreSQL. Amounts
// are stored as BIGINT scale units; all aggregation is integer SQL.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

// SaveTransaction inserts a new transaction row.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Amount,
		txn.Currency,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save transaction: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// FindTransactionByID retrieves one of the user's transactions. The
// owner filter sits in the WHERE clause, so an id belonging to another
// user scans as no rows and maps to the same ErrNotFound as a missing id.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, amount, currency, created_at
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var txn domain.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.Amount,
		&txn.Currency,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction %s: %v", apperrors.ErrStorageUnavailable, transactionID, err)
	}
	return &txn, nil
}

// FindTransactionsByUser returns one page of the user's transactions
// ordered newest-first (ties broken by id for a stable order), plus the
// user's total transaction count.
func (r *TransactionRepository) FindTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, int64, error) {
	countQuery := `SELECT COUNT(*) FROM transactions WHERE user_id = $1;`
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count transactions: %v", apperrors.ErrStorageUnavailable, err)
	}

	query := `
		SELECT transaction_id, user_id, amount, currency, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to query transactions: %v", apperrors.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.UserID,
			&txn.Amount,
			&txn.Currency,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to scan transactions: %v", apperrors.ErrStorageUnavailable, err)
	}

	return txns, total, nil
}

// SummarizeByCurrency groups the user's transactions by currency with an
// integer SUM, ordered by currency code. A single query keeps the
// aggregate one consistent read relative to concurrent inserts.
func (r *TransactionRepository) SummarizeByCurrency(ctx context.Context, userID string) ([]domain.CurrencySummary, error) {
	query := `
		SELECT currency, SUM(amount)::BIGINT AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY currency
		ORDER BY currency ASC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transaction summary: %v", apperrors.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	summaries := []domain.CurrencySummary{}
	for rows.Next() {
		var s domain.CurrencySummary
		if err := rows.Scan(&s.Currency, &s.Total); err != nil {
			return nil, fmt.Errorf("%w: failed to scan summary row: %v", apperrors.ErrStorageUnavailable, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating summary rows: %v", apperrors.ErrStorageUnavailable, err)
	}

	return summaries, nil
}
