package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is an operating cost of a TenantBusiness
type Expense struct {
	BaseModel
	Description      string          `json:"description" gorm:"not null;size:500"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category         ExpenseCategory `json:"category" gorm:"type:varchar(20);not null"`
	ExpenseDate      time.Time       `json:"expenseDate" gorm:"not null;index"`
	TenantBusinessID uuid.UUID       `json:"tenantBusinessId" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
