package impl

import (
	"context"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionAdminFixtures struct {
	service      usecase.SessionUsecase
	customerRepo *mockRepo.MockCustomerRepository
	sessionRepo  *mockRepo.MockSessionRepository
}

func createTestSessionAdminService(t *testing.T) sessionAdminFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	txManager := &passthroughTxManager{factory: &fixtureRepoFactory{
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
	}}

	return sessionAdminFixtures{
		service:      NewSessionAdminService(txManager, newDiscardLogger()),
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
	}
}

func sessionHistory(customerID int64) []*entity.Session {
	now := time.Now()
	recentLogin := now.Add(-time.Hour)
	oldLogin := now.Add(-24 * time.Hour)
	oldLogout := oldLogin.Add(2 * time.Hour)

	return []*entity.Session{
		{
			ID:          2,
			UUID:        uuid.New(),
			CustomerID:  customerID,
			AccessToken: "token-recent",
			LoginAt:     recentLogin,
			ExpiresAt:   recentLogin.Add(8 * time.Hour),
		},
		{
			ID:          1,
			UUID:        uuid.New(),
			CustomerID:  customerID,
			AccessToken: "token-old",
			LoginAt:     oldLogin,
			ExpiresAt:   oldLogin.Add(8 * time.Hour),
			LogoutAt:    &oldLogout,
		},
	}
}

func TestSessionAdminService_Sessions(t *testing.T) {
	fx := createTestSessionAdminService(t)
	ctx := context.Background()
	customer := storedCustomer()

	fx.customerRepo.EXPECT().
		FindByUUID(ctx, customer.UUID).
		Return(customer, nil)
	fx.sessionRepo.EXPECT().
		FindByCustomerID(ctx, customer.ID).
		Return(sessionHistory(customer.ID), nil)

	infos, err := fx.service.Sessions(ctx, customer.UUID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, infos[0].Active)
	assert.False(t, infos[1].Active)
	assert.NotNil(t, infos[1].LogoutAt)
}

func TestSessionAdminService_Sessions_UnknownCustomer(t *testing.T) {
	fx := createTestSessionAdminService(t)
	ctx := context.Background()
	unknown := uuid.New()

	fx.customerRepo.EXPECT().
		FindByUUID(ctx, unknown).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.Sessions(ctx, unknown)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionAdminService_SessionStatistics(t *testing.T) {
	fx := createTestSessionAdminService(t)
	ctx := context.Background()
	customer := storedCustomer()
	history := sessionHistory(customer.ID)

	fx.customerRepo.EXPECT().
		FindByUUID(ctx, customer.UUID).
		Return(customer, nil)
	fx.sessionRepo.EXPECT().
		FindByCustomerID(ctx, customer.ID).
		Return(history, nil)

	stats, err := fx.service.SessionStatistics(ctx, customer.UUID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 1, stats.ActiveSessions)
	require.NotNil(t, stats.LastLoginAt)
	assert.True(t, stats.LastLoginAt.Equal(history[0].LoginAt))
	require.NotNil(t, stats.FirstLoginAt)
	assert.True(t, stats.FirstLoginAt.Equal(history[1].LoginAt))
}

func TestSessionAdminService_SessionStatistics_NoSessions(t *testing.T) {
	fx := createTestSessionAdminService(t)
	ctx := context.Background()
	customer := storedCustomer()

	fx.customerRepo.EXPECT().
		FindByUUID(ctx, customer.UUID).
		Return(customer, nil)
	fx.sessionRepo.EXPECT().
		FindByCustomerID(ctx, customer.ID).
		Return(nil, nil)

	stats, err := fx.service.SessionStatistics(ctx, customer.UUID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Nil(t, stats.FirstLoginAt)
	assert.Nil(t, stats.LastLoginAt)
}
