package ports

import (
	"context"

	"github.com/adopet/account-service/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to Register.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AccountService implements registration, login, and profile updates.
type AccountService interface {
	// Register validates required fields in order (name, email, password),
	// rejects duplicate emails, and returns a token bound to the new user.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login authenticates by email and password. Unknown email and wrong
	// password both surface as domain.ErrUserNotFound.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// UpdateProfile overwrites the user's mutable fields.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
}
