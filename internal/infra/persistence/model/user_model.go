// Package model holds the gorm persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Photo                string    `gorm:"type:varchar(255)"`
	Role                 string    `gorm:"type:varchar(20);not null;default:user"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	PasswordChangedAt    *time.Time
	PasswordResetToken   *string `gorm:"type:varchar(64);index"`
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
