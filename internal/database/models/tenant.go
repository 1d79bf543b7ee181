package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is a renter living in a property. Not to be confused with the
// TenantBusiness, which is the isolation boundary.
type Tenant struct {
	BaseModel
	Name             string          `json:"name" gorm:"not null;size:200"`
	Gender           Gender          `json:"gender" gorm:"type:varchar(10);not null"`
	RentAmount       decimal.Decimal `json:"rentAmount" gorm:"type:numeric(12,2);not null"`
	RoomNumber       string          `json:"roomNumber" gorm:"not null;size:50"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus" gorm:"type:varchar(10);not null;default:'Unpaid';index"`
	MobileNumber     string          `json:"mobileNumber" gorm:"not null;size:20"`
	WhatsappNumber   string          `json:"whatsappNumber,omitempty" gorm:"size:20"`
	DocumentURL      string          `json:"documentUrl" gorm:"not null;default:''"`
	PropertyID       uuid.UUID       `json:"propertyId" gorm:"type:uuid;not null;index"`
	TenantBusinessID uuid.UUID       `json:"tenantBusinessId" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
