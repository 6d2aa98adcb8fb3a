package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
	"github.com/trackmint/transaction_tracker/internal/core/domain"
	portsrepo "github.com/trackmint/transaction_tracker/internal/core/ports/repositories"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

// SaveUser inserts a new user row. A duplicate email maps to ErrDuplicate.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("%w: failed to save user: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// FindUserByID retrieves a user by primary key.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, created_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, userID))
}

// FindUserByEmail retrieves a user by (lowercased) email.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, created_at
		FROM users
		WHERE email = $1;
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find user: %v", apperrors.ErrStorageUnavailable, err)
	}
	return &user, nil
}
