package services

import (
	"context"

	"github.com/trackmint/transaction_tracker/internal/core/domain"
	"github.com/trackmint/transaction_tracker/internal/dto"
)

// UserSvcFacade defines user registration and authentication.
type UserSvcFacade interface {
	// RegisterUser creates a new user account. A duplicate email maps
	// to apperrors.ErrDuplicate.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user, or
	// apperrors.ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID returns the user with the given id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
