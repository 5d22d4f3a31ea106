package cache

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"
)

// noopSessionCache satisfies the SessionCache interface without storing
// anything. Every Get reports a miss, so callers always fall through to the
// session repository.
type noopSessionCache struct{}

// NewNoopSessionCache is the constructor for noopSessionCache.
func NewNoopSessionCache() service.SessionCache {
	return &noopSessionCache{}
}

func (c *noopSessionCache) Get(_ context.Context, _ string) (*entity.Session, error) {
	return nil, service.ErrSessionNotCached
}

func (c *noopSessionCache) Set(_ context.Context, _ *entity.Session) error {
	return nil
}

func (c *noopSessionCache) Delete(_ context.Context, _ string) error {
	return nil
}
