// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their surrogate key.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByUUID retrieves a single customer by their public identifier.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByContactNumber retrieves a single customer by their contact number.
	FindByContactNumber(ctx context.Context, contactNumber string) (*entity.Customer, error)

	// Create persists a new customer and fills in the generated surrogate key
	// and timestamps. The contact number carries a uniqueness constraint;
	// concurrent duplicate creates surface as ErrContactNumberRegistered.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update persists the mutable profile fields (first and last name).
	Update(ctx context.Context, customer *entity.Customer) error

	// UpdatePassword persists a new password hash and salt pair.
	UpdatePassword(ctx context.Context, customer *entity.Customer) error
}
