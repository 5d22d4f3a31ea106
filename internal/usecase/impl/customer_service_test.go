package impl

import (
	"context"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/infra/cache"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	sessionRepo  *mockRepo.MockSessionRepository
	crypto       *mockSvc.MockPasswordCryptographyProvider
	tokenIssuer  *mockSvc.MockTokenIssuer
	txManager    *passthroughTxManager
}

func createTestCustomerService(t *testing.T, sessionCache service.SessionCache) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	crypto := mockSvc.NewMockPasswordCryptographyProvider(t)
	tokenIssuer := mockSvc.NewMockTokenIssuer(t)

	txManager := &passthroughTxManager{factory: &fixtureRepoFactory{
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
	}}

	svc := NewCustomerService(txManager, crypto, tokenIssuer, sessionCache, newDiscardLogger())

	return customerServiceFixtures{
		service:      svc,
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
		crypto:       crypto,
		tokenIssuer:  tokenIssuer,
		txManager:    txManager,
	}
}

func validSignUpInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Password:      "Abcd@1234",
	}
}

func storedCustomer() *entity.Customer {
	return &entity.Customer{
		ID:            11,
		UUID:          uuid.New(),
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Password:      "stored-hash",
		Salt:          "stored-salt",
	}
}

func activeSession(customer *entity.Customer) *entity.Session {
	loginAt := time.Now().Add(-time.Hour)

	return &entity.Session{
		ID:          21,
		UUID:        uuid.New(),
		CustomerID:  customer.ID,
		Customer:    customer,
		AccessToken: "token-active",
		LoginAt:     loginAt,
		ExpiresAt:   loginAt.Add(sessionTTL),
	}
}

func TestCustomerService_SignUp_Success(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)
	fx.crypto.EXPECT().Encrypt(input.Password).Return("fresh-salt", "fresh-hash", nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(ctx context.Context, customer *entity.Customer) {
			customer.ID = 11
		}).
		Return(nil)

	out, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.Customer.UUID)
	assert.Equal(t, "fresh-hash", out.Customer.Password)
	assert.Equal(t, "fresh-salt", out.Customer.Salt)
	assert.NotEqual(t, input.Password, out.Customer.Password)
}

func TestCustomerService_SignUp_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SignUpInput)
	}{
		{"first name", func(in *usecase.SignUpInput) { in.FirstName = "" }},
		{"email", func(in *usecase.SignUpInput) { in.Email = "" }},
		{"contact number", func(in *usecase.SignUpInput) { in.ContactNumber = "" }},
		{"password", func(in *usecase.SignUpInput) { in.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCustomerService(t, missSessionCache{})
			input := validSignUpInput()
			tt.mutate(&input)

			_, err := fx.service.SignUp(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrSignupFieldsMissing)
		})
	}
}

func TestCustomerService_SignUp_MissingLastNameAllowed(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	input.LastName = ""

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)
	fx.crypto.EXPECT().Encrypt(input.Password).Return("s", "h", nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	_, err := fx.service.SignUp(ctx, input)
	assert.NoError(t, err)
}

func TestCustomerService_SignUp_WhitespaceFirstNameAccepted(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	// The required-field rule rejects absent values only; whitespace is
	// content.
	input.FirstName = " "

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)
	fx.crypto.EXPECT().Encrypt(input.Password).Return("s", "h", nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	_, err := fx.service.SignUp(ctx, input)
	assert.NoError(t, err)
}

func TestCustomerService_SignUp_DuplicateBeforeFormatChecks(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()

	// Every other field is invalid; the duplicate still wins.
	input := validSignUpInput()
	input.Email = "not-an-email"
	input.ContactNumber = "123"
	input.Password = "weak"

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(storedCustomer(), nil)

	_, err := fx.service.SignUp(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrContactNumberRegistered)
}

func TestCustomerService_SignUp_InvalidEmail(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	input.Email = "a.b@c.com"

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.SignUp(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestCustomerService_SignUp_BoundaryEmailAccepted(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	input.Email = "ab@cd.ef"

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)
	fx.crypto.EXPECT().Encrypt(input.Password).Return("s", "h", nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	_, err := fx.service.SignUp(ctx, input)
	assert.NoError(t, err)
}

func TestCustomerService_SignUp_InvalidContactNumber(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	input.ContactNumber = "98765432"

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.SignUp(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidContactNumber)
}

func TestCustomerService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	input := validSignUpInput()
	input.Password = "abcd1234"

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, input.ContactNumber).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.SignUp(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestCustomerService_Authenticate_Success(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, customer.ContactNumber).
		Return(customer, nil)
	fx.crypto.EXPECT().
		EncryptWithSalt("Abcd@1234", customer.Salt).
		Return(customer.Password, nil)
	fx.tokenIssuer.EXPECT().
		Issue(customer.Password, customer.UUID.String(), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return("issued-token", nil)

	var created *entity.Session
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = 21
			created = session
		}).
		Return(nil)

	out, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		ContactNumber: customer.ContactNumber,
		Password:      "Abcd@1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", out.AccessToken)
	require.NotNil(t, created)
	assert.Equal(t, customer.ID, created.CustomerID)
	assert.Nil(t, created.LogoutAt)
	assert.Equal(t, sessionTTL, created.ExpiresAt.Sub(created.LoginAt))
	assert.True(t, out.ExpiresAt.Equal(created.ExpiresAt))
}

func TestCustomerService_Authenticate_UnknownContactNumber(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, "0000000000").
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		ContactNumber: "0000000000",
		Password:      "Abcd@1234",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContactNumberNotRegistered)
}

func TestCustomerService_Authenticate_InvalidCredentials(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()

	fx.customerRepo.EXPECT().
		FindByContactNumber(ctx, customer.ContactNumber).
		Return(customer, nil)
	fx.crypto.EXPECT().
		EncryptWithSalt("wrong", customer.Salt).
		Return("some-other-hash", nil)

	_, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		ContactNumber: customer.ContactNumber,
		Password:      "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCustomerService_ValidateSession_Active(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	got, err := fx.service.ValidateSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.UUID, got.UUID)
}

func TestCustomerService_ValidateSession_TokenNotFound(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, "unknown").
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.ValidateSession(ctx, "unknown")
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestCustomerService_ValidateSession_AlreadyLoggedOut(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())
	logoutAt := time.Now().Add(-30 * time.Minute)
	session.LogoutAt = &logoutAt

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	_, err := fx.service.ValidateSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrLoggedOut)
}

func TestCustomerService_ValidateSession_ExpiredMaterializesLogout(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())
	session.ExpiresAt = time.Now().Add(-time.Minute)

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, updated *entity.Session) {
			assert.NotNil(t, updated.LogoutAt)
		}).
		Return(nil)

	_, err := fx.service.ValidateSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestCustomerService_ValidateSession_LoggedOutWinsOverExpired(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())
	session.ExpiresAt = time.Now().Add(-time.Hour)
	logoutAt := session.ExpiresAt
	session.LogoutAt = &logoutAt

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	_, err := fx.service.ValidateSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrLoggedOut)
}

func TestCustomerService_ValidateSession_CacheFastPath(t *testing.T) {
	sessionCache := mockSvc.NewMockSessionCache(t)
	fx := createTestCustomerService(t, sessionCache)
	ctx := context.Background()

	session := activeSession(storedCustomer())
	session.Customer = nil // cached entries carry no customer row

	sessionCache.EXPECT().
		Get(ctx, session.AccessToken).
		Return(session, nil)

	got, err := fx.service.ValidateSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.UUID, got.UUID)
}

func TestCustomerService_Logout_Success(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, updated *entity.Session) {
			assert.NotNil(t, updated.LogoutAt)
		}).
		Return(nil)

	closed, err := fx.service.Logout(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.NotNil(t, closed.LogoutAt)
	assert.Equal(t, 1, fx.txManager.executes, "token checks and logout write share one transaction")
}

func TestCustomerService_Logout_ConcurrentLogoutNotOverwritten(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())

	// The session reads as active, but another logout lands first; the
	// guarded write refuses to touch the closed row.
	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Return(repository.ErrSessionAlreadyClosed)

	_, err := fx.service.Logout(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrLoggedOut)
	assert.Equal(t, 1, fx.txManager.executes)
}

func TestCustomerService_Logout_AlreadyLoggedOut(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())
	logoutAt := time.Now().Add(-time.Minute)
	session.LogoutAt = &logoutAt

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	_, err := fx.service.Logout(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrLoggedOut)
}

func TestCustomerService_Logout_EvictsCachedSession(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	sessionCache := cache.NewRedisSessionCache(client)

	fx := createTestCustomerService(t, sessionCache)
	ctx := context.Background()
	session := activeSession(storedCustomer())

	require.NoError(t, sessionCache.Set(ctx, session))

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	_, err := fx.service.Logout(ctx, session.AccessToken)
	require.NoError(t, err)

	_, err = sessionCache.Get(ctx, session.AccessToken)
	assert.ErrorIs(t, err, service.ErrSessionNotCached)

	// With the cache entry gone, validation hits the store and sees the
	// closed session.
	_, err = fx.service.ValidateSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrLoggedOut)
}

func TestCustomerService_Logout_EvictionFailureFailsLogout(t *testing.T) {
	sessionCache := mockSvc.NewMockSessionCache(t)
	fx := createTestCustomerService(t, sessionCache)
	ctx := context.Background()
	session := activeSession(storedCustomer())

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.sessionRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)
	sessionCache.EXPECT().
		Delete(ctx, session.AccessToken).
		Return(errors.New("connection refused"))

	_, err := fx.service.Logout(ctx, session.AccessToken)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to evict session from cache")
}

func TestCustomerService_CurrentCustomer_FromPreloadedSession(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()
	session := activeSession(customer)

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	got, err := fx.service.CurrentCustomer(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customer.UUID, got.UUID)
}

func TestCustomerService_CurrentCustomer_FetchesWhenNotPreloaded(t *testing.T) {
	sessionCache := mockSvc.NewMockSessionCache(t)
	fx := createTestCustomerService(t, sessionCache)
	ctx := context.Background()
	customer := storedCustomer()
	session := activeSession(customer)
	session.Customer = nil

	sessionCache.EXPECT().
		Get(ctx, session.AccessToken).
		Return(session, nil)
	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	got, err := fx.service.CurrentCustomer(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customer.UUID, got.UUID)
}

func TestCustomerService_UpdateProfile_Success(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()
	session := activeSession(customer)

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)
	fx.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(ctx context.Context, updated *entity.Customer) {
			assert.Equal(t, "Maya", updated.FirstName)
			assert.Equal(t, "Iyer", updated.LastName)
		}).
		Return(nil)

	got, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		AccessToken: session.AccessToken,
		FirstName:   "Maya",
		LastName:    "Iyer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maya", got.FirstName)
}

func TestCustomerService_UpdateProfile_PropagatesValidationFailure(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, "unknown").
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		AccessToken: "unknown",
		FirstName:   "Maya",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestCustomerService_ChangePassword_WeakNewPassword(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	session := activeSession(storedCustomer())

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)

	err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		AccessToken: session.AccessToken,
		OldPassword: "Abcd@1234",
		NewPassword: "weak",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWeakNewPassword)
}

func TestCustomerService_ChangePassword_IncorrectOldPassword(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()
	session := activeSession(customer)

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)
	fx.crypto.EXPECT().
		EncryptWithSalt("Wrong@1234", customer.Salt).
		Return("mismatching-hash", nil)

	err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		AccessToken: session.AccessToken,
		OldPassword: "Wrong@1234",
		NewPassword: "Efgh@5678",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectOldPassword)
}

func TestCustomerService_ChangePassword_Success(t *testing.T) {
	fx := createTestCustomerService(t, missSessionCache{})
	ctx := context.Background()
	customer := storedCustomer()
	session := activeSession(customer)

	fx.sessionRepo.EXPECT().
		FindByAccessToken(ctx, session.AccessToken).
		Return(session, nil)
	fx.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)
	fx.crypto.EXPECT().
		EncryptWithSalt("Abcd@1234", "stored-salt").
		Return("stored-hash", nil)
	fx.crypto.EXPECT().
		Encrypt("Efgh@5678").
		Return("new-salt", "new-hash", nil)
	fx.customerRepo.EXPECT().
		UpdatePassword(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(ctx context.Context, updated *entity.Customer) {
			assert.Equal(t, "new-hash", updated.Password)
			assert.Equal(t, "new-salt", updated.Salt)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		AccessToken: session.AccessToken,
		OldPassword: "Abcd@1234",
		NewPassword: "Efgh@5678",
	})
	assert.NoError(t, err)
}
