// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/usecase"
	"tiffin/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionTTL is the fixed lifetime of a login session.
const sessionTTL = 8 * time.Hour

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	crypto       service.PasswordCryptographyProvider
	tokenIssuer  service.TokenIssuer
	sessionCache service.SessionCache
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService. It receives all dependencies as interfaces.
func NewCustomerService(
	txManager repository.TransactionManager,
	crypto service.PasswordCryptographyProvider,
	tokenIssuer service.TokenIssuer,
	sessionCache service.SessionCache,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:    txManager,
		crypto:       crypto,
		tokenIssuer:  tokenIssuer,
		sessionCache: sessionCache,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete customer registration process.
//
// The checks run in a fixed order and the first failure wins: missing
// required fields, duplicate contact number, email format, contact number
// format, password strength. The duplicate check precedes the format checks.
func (srv *customerService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Debug("Starting customer sign-up", "contactNumber", input.ContactNumber)

	// 1. Required fields; the last name is the only optional one.
	if validation.IsEmpty(input.FirstName) ||
		validation.IsEmpty(input.Email) ||
		validation.IsEmpty(input.ContactNumber) ||
		validation.IsEmpty(input.Password) {
		return nil, domainerrors.ErrSignupFieldsMissing
	}

	var registeredCustomer *entity.Customer

	// Execute the remaining checks and the creation within a single database
	// transaction so a concurrent duplicate sign-up cannot slip between the
	// lookup and the create.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// 2. Duplicate contact number.
		_, err := customerRepo.FindByContactNumber(ctx, input.ContactNumber)
		if err == nil {
			// If no error, a customer with this contact number was found.
			return domainerrors.ErrContactNumberRegistered
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to find customer by contact number")
		}

		// 3. Email format.
		if !validation.IsValidEmail(input.Email) {
			return domainerrors.ErrInvalidEmail
		}

		// 4. Contact number format.
		if !validation.IsValidContactNumber(input.ContactNumber) {
			return domainerrors.ErrInvalidContactNumber
		}

		// 5. Password strength.
		if !validation.IsStrongPassword(input.Password) {
			return domainerrors.ErrWeakPassword
		}

		// Derive the credential material; the plaintext goes no further.
		salt, hash, err := srv.crypto.Encrypt(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt password")
		}

		newCustomer := &entity.Customer{
			UUID:          uuid.New(),
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			Email:         input.Email,
			ContactNumber: input.ContactNumber,
			Password:      hash,
			Salt:          salt,
		}

		if err := customerRepo.Create(ctx, newCustomer); err != nil {
			return errors.WithStack(err)
		}
		registeredCustomer = newCustomer

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Customer sign-up failed", "contactNumber", input.ContactNumber, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("Customer signed up successfully", "customerUUID", registeredCustomer.UUID)

	return &usecase.SignUpOutput{Customer: registeredCustomer}, nil
}

// Authenticate orchestrates the customer login process.
func (srv *customerService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting customer login", "contactNumber", input.ContactNumber)

	var loggedInCustomer *entity.Customer
	var session *entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()
		sessionRepo := repoFactory.SessionRepo()

		// 1. Find the customer behind the contact number.
		customer, err := customerRepo.FindByContactNumber(ctx, input.ContactNumber)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrContactNumberNotRegistered
			}

			return errors.Wrap(err, "failed to find customer by contact number")
		}

		// 2. Re-derive the hash with the stored salt and compare.
		derivedHash, err := srv.crypto.EncryptWithSalt(input.Password, customer.Salt)
		if err != nil {
			return errors.Wrap(err, "failed to derive password hash")
		}
		if derivedHash != customer.Password {
			return domainerrors.ErrInvalidCredentials
		}

		// 3. Issue the access token. The freshly derived hash doubles as the
		// signing key, so a password change invalidates all prior tokens.
		loginAt := time.Now()
		expiresAt := loginAt.Add(sessionTTL)

		accessToken, err := srv.tokenIssuer.Issue(derivedHash, customer.UUID.String(), loginAt, expiresAt)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		// 4. Persist the new session.
		newSession := &entity.Session{
			UUID:        uuid.New(),
			CustomerID:  customer.ID,
			AccessToken: accessToken,
			LoginAt:     loginAt,
			ExpiresAt:   expiresAt,
		}
		if err := sessionRepo.Create(ctx, newSession); err != nil {
			return errors.WithStack(err)
		}

		loggedInCustomer = customer
		session = newSession

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", "contactNumber", input.ContactNumber, "error", err.Error())

		return nil, err
	}

	// Best effort: prime the session cache. A cache failure never fails the login.
	if err := srv.sessionCache.Set(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to cache session", "error", err.Error())
	}

	srv.log(ctx).Debug("Customer logged in successfully", "customerUUID", loggedInCustomer.UUID)

	return &usecase.AuthenticateOutput{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		Customer:    loggedInCustomer,
	}, nil
}

// authorizeSession runs the ordered token checks against the store inside the
// caller's transaction: unknown token, already logged out, expired. A session
// that is both logged out and expired reports logged out. On expiry the
// logout timestamp is written through sessionRepo and expired=true comes back
// with a nil error, so the caller can let that write commit before surfacing
// the expiry failure.
func (srv *customerService) authorizeSession(ctx context.Context, sessionRepo repository.SessionRepository, accessToken string, now time.Time) (*entity.Session, bool, error) {
	found, err := sessionRepo.FindByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, false, domainerrors.ErrNotLoggedIn
		}

		return nil, false, errors.Wrap(err, "failed to find session by access token")
	}

	if found.LogoutAt != nil {
		return nil, false, domainerrors.ErrLoggedOut
	}

	if validation.HasSessionExpired(found.ExpiresAt, now) {
		logoutAt := now
		found.LogoutAt = &logoutAt
		if err := sessionRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrSessionAlreadyClosed) {
				return nil, false, domainerrors.ErrLoggedOut
			}

			return nil, false, errors.Wrap(err, "failed to materialize session expiry")
		}

		return nil, true, nil
	}

	return found, false, nil
}

// evictSession removes a cached token. Failures are logged; callers that must
// not leave a stale entry behind call the cache directly instead.
func (srv *customerService) evictSession(ctx context.Context, accessToken string) {
	if err := srv.sessionCache.Delete(ctx, accessToken); err != nil {
		srv.log(ctx).Warn("Failed to evict cached session", "error", err.Error())
	}
}

// ValidateSession checks an access token against the session store.
//
// The checks run in a fixed order: unknown token, already logged out,
// expired. When expiry is detected, the logout timestamp is materialized and
// committed before the expiry error is returned.
func (srv *customerService) ValidateSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	now := time.Now()

	// Fast path: a cache hit is a session that was active when cached. The
	// expiry still has to be rechecked against the current clock.
	if cached, err := srv.sessionCache.Get(ctx, accessToken); err == nil {
		if !validation.HasSessionExpired(cached.ExpiresAt, now) {
			return cached, nil
		}
		// Expired in the cache; fall through to the store to materialize
		// the logout timestamp.
	} else if !errors.Is(err, service.ErrSessionNotCached) {
		srv.log(ctx).Warn("Session cache lookup failed", "error", err.Error())
	}

	var session *entity.Session
	var expired bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, exp, err := srv.authorizeSession(ctx, repoFactory.SessionRepo(), accessToken, now)
		if err != nil {
			return err
		}
		session, expired = found, exp

		return nil
	})

	if err != nil {
		return nil, err
	}

	if expired {
		// An expired cached entry is never served (the clock recheck above),
		// so a failed eviction here only costs a future fall-through.
		srv.evictSession(ctx, accessToken)

		return nil, domainerrors.ErrSessionExpired
	}

	// Refresh the cache for the next validation.
	if err := srv.sessionCache.Set(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to cache session", "error", err.Error())
	}

	return session, nil
}

// CurrentCustomer resolves an access token to the customer who owns it.
// Validation failures are propagated unchanged.
func (srv *customerService) CurrentCustomer(ctx context.Context, accessToken string) (*entity.Customer, error) {
	session, err := srv.ValidateSession(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	// The store path preloads the customer; the cache path does not.
	if session.Customer != nil {
		return session.Customer, nil
	}

	var customer *entity.Customer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByID(ctx, session.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// Logout closes the session behind an access token. The token checks and the
// logout write run in one transaction, so a logout that lands between them
// cannot be overwritten; the guarded session update reports it as already
// logged out instead. Logging out twice reports already logged out.
func (srv *customerService) Logout(ctx context.Context, accessToken string) (*entity.Session, error) {
	now := time.Now()

	var session *entity.Session
	var expired bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		found, exp, err := srv.authorizeSession(ctx, sessionRepo, accessToken, now)
		if err != nil {
			return err
		}
		if exp {
			expired = true

			return nil
		}

		logoutAt := now
		found.LogoutAt = &logoutAt
		if err := sessionRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrSessionAlreadyClosed) {
				return domainerrors.ErrLoggedOut
			}

			return errors.Wrap(err, "failed to close session")
		}
		session = found

		return nil
	})

	// Every outcome below means the store now holds a closed session for this
	// token, so the cached entry has to go; a failed eviction fails the
	// logout so the stale entry cannot outlive it.
	sessionClosed := err == nil || expired || errors.Is(err, domainerrors.ErrLoggedOut)
	if sessionClosed {
		if delErr := srv.sessionCache.Delete(ctx, accessToken); delErr != nil {
			srv.log(ctx).Error("Failed to evict session after logout", "error", delErr.Error())

			return nil, errors.Wrap(delErr, "failed to evict session from cache")
		}
	}

	if err != nil {
		return nil, err
	}
	if expired {
		return nil, domainerrors.ErrSessionExpired
	}

	srv.log(ctx).Debug("Customer logged out", "sessionUUID", session.UUID)

	return session, nil
}

// UpdateProfile replaces the customer's first and last name. The new values
// are taken as given from the authenticated caller. The token checks and the
// profile write run in one transaction.
func (srv *customerService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.Customer, error) {
	now := time.Now()

	var customer *entity.Customer
	var expired bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, exp, err := srv.authorizeSession(ctx, repoFactory.SessionRepo(), input.AccessToken, now)
		if err != nil {
			return err
		}
		if exp {
			expired = true

			return nil
		}

		customerRepo := repoFactory.CustomerRepo()

		found, err := customerRepo.FindByID(ctx, session.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		found.FirstName = input.FirstName
		found.LastName = input.LastName

		if err := customerRepo.Update(ctx, found); err != nil {
			return errors.WithStack(err)
		}
		customer = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", "error", err.Error())

		return nil, err
	}
	if expired {
		srv.evictSession(ctx, input.AccessToken)

		return nil, domainerrors.ErrSessionExpired
	}

	return customer, nil
}

// ChangePassword verifies the old password and stores a freshly salted hash
// of the new one. The token checks run first, then the strength check on the
// new password, then the old-password comparison, all in one transaction.
func (srv *customerService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	now := time.Now()

	var customerID int64
	var expired bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, exp, err := srv.authorizeSession(ctx, repoFactory.SessionRepo(), input.AccessToken, now)
		if err != nil {
			return err
		}
		if exp {
			expired = true

			return nil
		}
		customerID = session.CustomerID

		if !validation.IsStrongPassword(input.NewPassword) {
			return domainerrors.ErrWeakNewPassword
		}

		customerRepo := repoFactory.CustomerRepo()

		customer, err := customerRepo.FindByID(ctx, session.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to find customer by id")
		}

		derivedHash, err := srv.crypto.EncryptWithSalt(input.OldPassword, customer.Salt)
		if err != nil {
			return errors.Wrap(err, "failed to derive password hash")
		}
		if derivedHash != customer.Password {
			return domainerrors.ErrIncorrectOldPassword
		}

		salt, hash, err := srv.crypto.Encrypt(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt new password")
		}

		customer.Password = hash
		customer.Salt = salt

		if err := customerRepo.UpdatePassword(ctx, customer); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", "error", err.Error())

		return err
	}
	if expired {
		srv.evictSession(ctx, input.AccessToken)

		return domainerrors.ErrSessionExpired
	}
	srv.log(ctx).Debug("Password changed", "customerID", customerID)

	return nil
}
