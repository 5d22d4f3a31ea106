package service

import (
	"context"
	"errors"

	"tiffin/internal/domain/entity"
)

// ErrSessionNotCached is returned by SessionCache.Get on a cache miss.
var ErrSessionNotCached = errors.New("session not cached")

// SessionCache is a read-through cache in front of the session store. It only
// ever holds sessions that were valid when written; logout and expiry evict.
// The cache is best effort: every caller must fall back to the repository on
// a miss, and cache failures must never fail the operation.
type SessionCache interface {
	// Get looks up a cached session by its access token.
	// Returns ErrSessionNotCached on a miss.
	Get(ctx context.Context, accessToken string) (*entity.Session, error)

	// Set stores a session, expiring it from the cache when the session
	// itself expires.
	Set(ctx context.Context, session *entity.Session) error

	// Delete evicts a session by its access token.
	Delete(ctx context.Context, accessToken string) error
}
