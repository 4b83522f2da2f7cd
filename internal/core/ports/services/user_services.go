package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// UserSvcFacade defines all operations for authentication and accounts
type UserSvcFacade interface {
	// Login verifies credentials and returns a signed JWT plus the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)

	// Register creates a new account with a bcrypt-hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByID retrieves a specific user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
