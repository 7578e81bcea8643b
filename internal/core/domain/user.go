package domain

import (
	"errors"
	"time"
)

// Sentinel errors for the account domain. The HTTP layer maps these to
// status codes and the localized response messages.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidToken = errors.New("invalid token")

	// Required-field errors, one per field so a request violating several
	// rules still receives exactly one message. Checks run in declaration
	// order: name, email, password.
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
)

// User is the account aggregate. PasswordHash never leaves the process:
// it is excluded from JSON and from the by-id store projection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Github       string    `json:"github"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	About        string    `json:"about"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
