package ports

import (
	"context"

	"github.com/sellhub/marketplace-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService issues and honours session credentials.
type AuthService interface {
	// Register creates a user with role "user" and returns a signed session
	// token alongside the created account.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login verifies credentials. Unknown email and wrong password both fail
	// with domain.ErrInvalidCredentials so callers cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me resolves the authenticated caller's account.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
