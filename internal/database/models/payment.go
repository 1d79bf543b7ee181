package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a rent payment recorded against a Tenant. PropertyID and
// TenantBusinessID are copied from the Tenant when the payment is created.
type Payment struct {
	BaseModel
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	PaymentDate      time.Time       `json:"paymentDate" gorm:"not null;index"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod" gorm:"type:varchar(20);not null;default:'Cash'"`
	TenantID         uuid.UUID       `json:"tenantId" gorm:"type:uuid;not null;index"`
	PropertyID       uuid.UUID       `json:"propertyId" gorm:"type:uuid;not null;index"`
	TenantBusinessID uuid.UUID       `json:"tenantBusinessId" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
