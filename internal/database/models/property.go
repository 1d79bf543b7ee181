package models

import (
	"github.com/google/uuid"
)

// Property is a PG building owned by a single TenantBusiness
type Property struct {
	BaseModel
	Name             string    `json:"name" gorm:"not null;size:200"`
	Address          string    `json:"address" gorm:"not null;size:500"`
	TenantBusinessID uuid.UUID `json:"tenantBusinessId" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}
