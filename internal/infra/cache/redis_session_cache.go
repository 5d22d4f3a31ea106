package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// sessionRecord is the compact cache representation of a session. It carries
// no customer row and no credential material beyond the token the key is
// already derived from.
type sessionRecord struct {
	ID          int64     `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	CustomerID  int64     `json:"customer_id"`
	AccessToken string    `json:"access_token"`
	LoginAt     time.Time `json:"login_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// redisSessionCache implements the SessionCache interface on Redis. Keys are
// the SHA-256 of the access token, so raw tokens never appear in the keyspace.
// Entries expire together with the session they describe.
type redisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache is the constructor for redisSessionCache.
func NewRedisSessionCache(client *redis.Client) service.SessionCache {
	return &redisSessionCache{client: client}
}

// NewSessionCache selects the cache implementation based on whether a Redis
// client is available. This function will be used as an Fx provider.
func NewSessionCache(client *redis.Client) service.SessionCache {
	if client == nil {
		return NewNoopSessionCache()
	}

	return NewRedisSessionCache(client)
}

func (c *redisSessionCache) Get(ctx context.Context, accessToken string) (*entity.Session, error) {
	payload, err := c.client.Get(ctx, sessionKey(accessToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotCached
		}

		return nil, errors.Wrap(err, "get cached session")
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "decode cached session")
	}

	return &entity.Session{
		ID:          record.ID,
		UUID:        record.UUID,
		CustomerID:  record.CustomerID,
		AccessToken: record.AccessToken,
		LoginAt:     record.LoginAt,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

func (c *redisSessionCache) Set(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		// Nothing to cache; the session is already expired.
		return nil
	}

	payload, err := json.Marshal(sessionRecord{
		ID:          session.ID,
		UUID:        session.UUID,
		CustomerID:  session.CustomerID,
		AccessToken: session.AccessToken,
		LoginAt:     session.LoginAt,
		ExpiresAt:   session.ExpiresAt,
	})
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	if err := c.client.Set(ctx, sessionKey(session.AccessToken), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "cache session")
	}

	return nil
}

func (c *redisSessionCache) Delete(ctx context.Context, accessToken string) error {
	if err := c.client.Del(ctx, sessionKey(accessToken)).Err(); err != nil {
		return errors.Wrap(err, "evict cached session")
	}

	return nil
}

func sessionKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))

	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}
