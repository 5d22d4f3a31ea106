// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one login session, active or expired. Sessions are
// closed by setting LogoutAt, never deleted; a customer accumulates session
// records over time.
type Session struct {
	ID          int64      // Surrogate key, internal to the persistence layer.
	UUID        uuid.UUID  // Public identifier for this session record.
	CustomerID  int64      // Links this session to the customer it belongs to.
	Customer    *Customer  // The owning customer, loaded on token lookup. Nil when not loaded.
	AccessToken string     // Opaque bearer credential, unique across sessions.
	LoginAt     time.Time  // When the customer authenticated.
	ExpiresAt   time.Time  // LoginAt plus the fixed session lifetime.
	LogoutAt    *time.Time // Nil while the session is active. Once set, never cleared.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active reports whether the session can still authorize requests at the
// given instant: not logged out and not yet expired.
func (s *Session) Active(now time.Time) bool {
	return s.LogoutAt == nil && now.Before(s.ExpiresAt)
}

// SessionInfo is a read model describing one session record for the
// session-listing endpoint. It carries no credential material.
type SessionInfo struct {
	SessionUUID uuid.UUID  `json:"session_id"`
	LoginAt     time.Time  `json:"login_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty"`
	Active      bool       `json:"active"`
}

// SessionStatistics summarizes a customer's session history.
type SessionStatistics struct {
	TotalSessions  int        `json:"total_sessions"`
	ActiveSessions int        `json:"active_sessions"`
	FirstLoginAt   *time.Time `json:"first_login_at,omitempty"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}
