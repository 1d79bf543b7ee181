package repository

import (
	"context"
	"time"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DateRange is a half-open time window [From, To)
type DateRange struct {
	From time.Time
	To   time.Time
}

// TenantBusinessRepositoryInterface defines the interface for tenant business repository operations
type TenantBusinessRepositoryInterface interface {
	GetByName(ctx context.Context, name string) (*models.TenantBusiness, error)
}

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	CreateWithTenantBusiness(ctx context.Context, business *models.TenantBusiness, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID) ([]models.Property, error)
	CountByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID) (int64, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TenantRepositoryInterface defines the interface for renter repository operations
type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.Tenant, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	CountByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID, status *models.PaymentStatus) (int64, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	UpdateDocumentURL(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	CreateAndMarkPaid(ctx context.Context, payment *models.Payment) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Payment, error)
	SumBetween(ctx context.Context, tenantBusinessID uuid.UUID, window DateRange) (decimal.Decimal, error)
}

// ExpenseRepositoryInterface defines the interface for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, tenantBusinessID uuid.UUID, window *DateRange) ([]models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumBetween(ctx context.Context, tenantBusinessID uuid.UUID, window DateRange) (decimal.Decimal, error)
}
