package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all PostgreSQL repositories over one
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(pool),
		UserRepo:        NewUserRepository(pool),
	}
}
