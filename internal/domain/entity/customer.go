// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the core entity of the account subsystem, representing one
// registered account of the food-ordering application.
type Customer struct {
	ID            int64     // Surrogate key, internal to the persistence layer.
	UUID          uuid.UUID // Public identifier exposed to clients instead of the surrogate key.
	FirstName     string    // Required, at most 30 characters.
	LastName      string    // Optional, at most 30 characters.
	Email         string    // Required, at most 50 characters, constrained format.
	ContactNumber string    // Required, exactly 10 digits, unique across customers.
	Password      string    // The salted password hash. Never the plaintext, never exposed.
	Salt          string    // Per-customer random salt used to derive Password.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this account.
}
