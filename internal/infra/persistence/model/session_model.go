package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'customer_sessions' table. Rows are never deleted;
// logout closes a session by setting logout_at.
type SessionModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID  int64     `gorm:"index;not null"`
	AccessToken string    `gorm:"type:text;uniqueIndex;not null"`
	LoginAt     time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	LogoutAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "customer_sessions"
}
