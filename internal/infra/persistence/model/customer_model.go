package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. The bigserial primary key stays
// internal; the UUID is the identifier exposed outside the subsystem.
type CustomerModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UUID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100)"`
	Email         string    `gorm:"type:varchar(255);not null"`
	ContactNumber string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Password      string    `gorm:"type:varchar(255);not null"`
	Salt          string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Sessions []SessionModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
