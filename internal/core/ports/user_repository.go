package ports

import (
	"context"

	"github.com/adopet/account-service/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Every field is applied
// unconditionally: an empty field clears the stored value (no partial
// update semantics).
type ProfileUpdate struct {
	Name   string
	Github string
	Phone  string
	City   string
	About  string
}

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create persists a new user and returns it with the store-assigned ID.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the full record, password hash included. Only the
	// login path may call this.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the sanitized record: the password hash is excluded
	// from the store projection, never loaded into memory.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile overwrites the mutable fields and returns the updated
	// sanitized record.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
}

// UserFinder is the read-only subset consumed by the authorization pipeline.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
