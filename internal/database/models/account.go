package models

import (
	"github.com/google/uuid"
)

// Account is a login bound to exactly one TenantBusiness
type Account struct {
	BaseModel
	Name             string    `json:"name" gorm:"not null;size:200"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null;size:255"` // stored lower-cased
	PasswordHash     string    `json:"-" gorm:"not null;size:255"`
	TenantBusinessID uuid.UUID `json:"tenantBusinessId" gorm:"type:uuid;not null;index"`

	TenantBusiness *TenantBusiness `json:"-" gorm:"foreignKey:TenantBusinessID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
