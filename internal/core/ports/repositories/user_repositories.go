package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// UserRepositoryFacade defines all operations for user accounts
type UserRepositoryFacade interface {
	// FindUserByID retrieves a specific user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// SaveUser persists a new user. The unique email constraint maps
	// violations to ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
}
