// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session inspection operations.
type SessionUsecase interface {
	// Sessions lists a customer's session records, newest login first.
	Sessions(ctx context.Context, customerUUID uuid.UUID) ([]*entity.SessionInfo, error)

	// SessionStatistics summarizes a customer's session history.
	SessionStatistics(ctx context.Context, customerUUID uuid.UUID) (*entity.SessionStatistics, error)
}
