// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new customer.
type SignUpInput struct {
	FirstName     string
	LastName      string
	Email         string
	ContactNumber string
	Password      string
}

// AuthenticateInput defines the data required for a customer to log in.
type AuthenticateInput struct {
	ContactNumber string
	Password      string
}

// UpdateProfileInput defines the data for a profile update. The new names
// replace the stored ones as given.
type UpdateProfileInput struct {
	AccessToken string
	FirstName   string
	LastName    string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	AccessToken string
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created customer.
type SignUpOutput struct {
	Customer *entity.Customer
}

// AuthenticateOutput returns the session credential after a successful login.
type AuthenticateOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Customer    *entity.Customer
}

// CustomerUsecase defines the interface for customer account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CustomerUsecase interface {
	// SignUp registers a new customer account. Validation failures surface
	// as domain errors with stable business codes.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)

	// Authenticate verifies credentials and opens a new session.
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error)

	// ValidateSession checks an access token and returns the session it
	// belongs to if it is still active.
	ValidateSession(ctx context.Context, accessToken string) (*entity.Session, error)

	// CurrentCustomer resolves an access token to the customer who owns it.
	CurrentCustomer(ctx context.Context, accessToken string) (*entity.Customer, error)

	// Logout closes the session behind an access token and returns the
	// closed session record.
	Logout(ctx context.Context, accessToken string) (*entity.Session, error)

	// UpdateProfile replaces the customer's first and last name.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.Customer, error)

	// ChangePassword verifies the old password and stores a new one.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
