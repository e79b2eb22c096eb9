// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The unique index names match the
// constraint names created by the SQL migrations so violations can be
// attributed to a column.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Username     string    `gorm:"type:varchar(30);not null;uniqueIndex:accounts_username_key"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:accounts_email_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;check:accounts_role_check,role IN ('applicant','employer')"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
