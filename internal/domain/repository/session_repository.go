// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tiffin/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session record matches a token.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionAlreadyClosed is returned by Update when the session's logout
// timestamp was already set. The timestamp is written once and never changed.
var ErrSessionAlreadyClosed = errors.New("session already closed")

// SessionRepository defines the standard operations for session persistence.
// Session records are append-and-close: they are created at login, updated at
// most to set the logout timestamp, and never deleted.
type SessionRepository interface {
	// FindByAccessToken retrieves a session record by its token string,
	// with the owning customer loaded.
	FindByAccessToken(ctx context.Context, accessToken string) (*entity.Session, error)

	// FindByCustomerID retrieves all session records of a customer,
	// newest login first.
	FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Session, error)

	// Create persists a new session and fills in the generated surrogate key
	// and timestamps.
	Create(ctx context.Context, session *entity.Session) error

	// Update persists the logout timestamp of an existing session. Sessions
	// whose logout timestamp is already set are left untouched and reported
	// via ErrSessionAlreadyClosed.
	Update(ctx context.Context, session *entity.Session) error
}
