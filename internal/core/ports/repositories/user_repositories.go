package repositories

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. A duplicate email maps to
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns the user with the given id, or
	// apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns the user with the given (lowercased)
	// email, or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
