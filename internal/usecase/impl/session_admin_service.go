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
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionAdminService implements the SessionUsecase interface.
type sessionAdminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionAdminService is the constructor for sessionAdminService.
func NewSessionAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionAdminService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sessions lists a customer's session records, newest login first.
func (srv *sessionAdminService) Sessions(ctx context.Context, customerUUID uuid.UUID) ([]*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Listing sessions", slog.Any("customer_uuid", customerUUID))

	var infos []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := srv.findCustomerSessions(ctx, repoFactory, customerUUID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, session := range sessions {
			infos = append(infos, &entity.SessionInfo{
				SessionUUID: session.UUID,
				LoginAt:     session.LoginAt,
				ExpiresAt:   session.ExpiresAt,
				LogoutAt:    session.LogoutAt,
				Active:      session.Active(now),
			})
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("customer_uuid", customerUUID))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return infos, nil
}

// SessionStatistics summarizes a customer's session history.
func (srv *sessionAdminService) SessionStatistics(ctx context.Context, customerUUID uuid.UUID) (*entity.SessionStatistics, error) {
	srv.log(ctx).Debug("Computing session statistics", slog.Any("customer_uuid", customerUUID))

	stats := &entity.SessionStatistics{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := srv.findCustomerSessions(ctx, repoFactory, customerUUID)
		if err != nil {
			return err
		}

		now := time.Now()
		stats.TotalSessions = len(sessions)
		for _, session := range sessions {
			if session.Active(now) {
				stats.ActiveSessions++
			}
		}
		if len(sessions) > 0 {
			// Sessions are ordered newest login first.
			lastLogin := sessions[0].LoginAt
			firstLogin := sessions[len(sessions)-1].LoginAt
			stats.LastLoginAt = &lastLogin
			stats.FirstLoginAt = &firstLogin
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to compute session statistics", slog.Any("error", err), slog.Any("customer_uuid", customerUUID))

		return nil, errors.Wrap(err, "failed to compute session statistics")
	}

	return stats, nil
}

// findCustomerSessions resolves the public identifier and loads the
// customer's session records.
func (srv *sessionAdminService) findCustomerSessions(ctx context.Context, repoFactory repository.RepositoryFactory, customerUUID uuid.UUID) ([]*entity.Session, error) {
	customer, err := repoFactory.CustomerRepo().FindByUUID(ctx, customerUUID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	sessions, err := repoFactory.SessionRepo().FindByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sessions")
	}

	return sessions, nil
}
