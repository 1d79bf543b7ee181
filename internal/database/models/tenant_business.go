package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantBusiness is a PG business and the root of tenancy. Every other
// entity except Account hangs off exactly one TenantBusiness.
type TenantBusiness struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:200"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for TenantBusiness
func (TenantBusiness) TableName() string {
	return "tenant_businesses"
}

// BeforeCreate sets the UUID if not already set
func (b *TenantBusiness) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
