package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, service.SessionCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedisSessionCache(client)
}

func testSession(expiresAt time.Time) *entity.Session {
	return &entity.Session{
		ID:          7,
		UUID:        uuid.New(),
		CustomerID:  42,
		AccessToken: "token-abc",
		LoginAt:     expiresAt.Add(-8 * time.Hour),
		ExpiresAt:   expiresAt,
	}
}

func TestRedisSessionCache_SetAndGet(t *testing.T) {
	t.Parallel()

	_, sessionCache := newTestCache(t)
	ctx := context.Background()

	session := testSession(time.Now().Add(time.Hour))
	require.NoError(t, sessionCache.Set(ctx, session))

	got, err := sessionCache.Get(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.UUID, got.UUID)
	assert.Equal(t, session.CustomerID, got.CustomerID)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
	assert.Nil(t, got.Customer, "cached sessions never carry the customer row")
}

func TestRedisSessionCache_GetMiss(t *testing.T) {
	t.Parallel()

	_, sessionCache := newTestCache(t)

	_, err := sessionCache.Get(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, service.ErrSessionNotCached)
}

func TestRedisSessionCache_SetSkipsExpiredSession(t *testing.T) {
	t.Parallel()

	_, sessionCache := newTestCache(t)
	ctx := context.Background()

	session := testSession(time.Now().Add(-time.Minute))
	require.NoError(t, sessionCache.Set(ctx, session))

	_, err := sessionCache.Get(ctx, session.AccessToken)
	assert.ErrorIs(t, err, service.ErrSessionNotCached)
}

func TestRedisSessionCache_Delete(t *testing.T) {
	t.Parallel()

	_, sessionCache := newTestCache(t)
	ctx := context.Background()

	session := testSession(time.Now().Add(time.Hour))
	require.NoError(t, sessionCache.Set(ctx, session))
	require.NoError(t, sessionCache.Delete(ctx, session.AccessToken))

	_, err := sessionCache.Get(ctx, session.AccessToken)
	assert.ErrorIs(t, err, service.ErrSessionNotCached)
}

func TestRedisSessionCache_EntryExpiresWithSession(t *testing.T) {
	t.Parallel()

	server, sessionCache := newTestCache(t)
	ctx := context.Background()

	session := testSession(time.Now().Add(time.Minute))
	require.NoError(t, sessionCache.Set(ctx, session))

	server.FastForward(2 * time.Minute)

	_, err := sessionCache.Get(ctx, session.AccessToken)
	assert.ErrorIs(t, err, service.ErrSessionNotCached)
}

func TestNewSessionCache_NilClientFallsBackToNoop(t *testing.T) {
	t.Parallel()

	sessionCache := NewSessionCache(nil)
	ctx := context.Background()

	require.NoError(t, sessionCache.Set(ctx, testSession(time.Now().Add(time.Hour))))

	_, err := sessionCache.Get(ctx, "token-abc")
	assert.ErrorIs(t, err, service.ErrSessionNotCached)
}
