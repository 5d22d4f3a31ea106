// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// FindByAccessToken retrieves a session by its token string, preloading the owning customer.
func (repo *sessionRepository) FindByAccessToken(ctx context.Context, accessToken string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		First(&sessionM, "access_token = ?", accessToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by access token")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByCustomerID retrieves all session records of a customer, newest login first.
func (repo *sessionRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Session, error) {
	var sessionMs []model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("login_at DESC").
		Find(&sessionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by customer id")
	}

	sessions := make([]*entity.Session, 0, len(sessionMs))
	for i := range sessionMs {
		sessions = append(sessions, toSessionDomain(&sessionMs[i]))
	}

	return sessions, nil
}

// Create persists a new session entity to the database.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSessionCreationFailed.WrapMessage("missing required session information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSessionCreationFailed.WrapMessage("invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// Update persists the logout timestamp of an existing session. Only logout_at
// is written; the token and validity window are immutable once created. The
// write is guarded so a timestamp set by a concurrent transaction is never
// overwritten.
func (repo *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND logout_at IS NULL", sessionM.ID).
		Select("logout_at").
		Updates(sessionM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update session")
	}
	if result.RowsAffected == 0 {
		// The session was closed by another transaction (or the row is gone).
		return repository.ErrSessionAlreadyClosed
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:          data.ID,
		UUID:        data.UUID,
		CustomerID:  data.CustomerID,
		Customer:    toCustomerDomain(data.Customer),
		AccessToken: data.AccessToken,
		LoginAt:     data.LoginAt,
		ExpiresAt:   data.ExpiresAt,
		LogoutAt:    data.LogoutAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel for persistence.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:          data.ID,
		UUID:        data.UUID,
		CustomerID:  data.CustomerID,
		AccessToken: data.AccessToken,
		LoginAt:     data.LoginAt,
		ExpiresAt:   data.ExpiresAt,
		LogoutAt:    data.LogoutAt,
	}
}
