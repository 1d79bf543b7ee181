package service

import (
	"context"
	"mime/multipart"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdentityServiceInterface defines the interface for registration, login and profile
type IdentityServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, actor auth.Actor) (*AccountResponse, error)
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	Create(ctx context.Context, actor auth.Actor, req *CreatePropertyRequest) (*models.Property, error)
	List(ctx context.Context, actor auth.Actor) ([]models.Property, error)
	Get(ctx context.Context, actor auth.Actor, id string) (*models.Property, error)
	Update(ctx context.Context, actor auth.Actor, id string, req *UpdatePropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

// TenantServiceInterface defines the interface for renter service
type TenantServiceInterface interface {
	Create(ctx context.Context, actor auth.Actor, propertyID string, req *CreateTenantRequest) (*models.Tenant, error)
	List(ctx context.Context, actor auth.Actor, propertyID string) ([]models.Tenant, error)
	Get(ctx context.Context, actor auth.Actor, propertyID, tenantID string) (*models.Tenant, error)
	Update(ctx context.Context, actor auth.Actor, propertyID, tenantID string, req *UpdateTenantRequest) (*models.Tenant, error)
	Delete(ctx context.Context, actor auth.Actor, propertyID, tenantID string) error
	UploadDocument(ctx context.Context, actor auth.Actor, propertyID, tenantID string, file *multipart.FileHeader) (*DocumentUploadResponse, error)
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	Record(ctx context.Context, actor auth.Actor, propertyID, tenantID string, req *RecordPaymentRequest) (*PaymentRecordedResponse, error)
	ListForTenant(ctx context.Context, actor auth.Actor, propertyID, tenantID string) ([]models.Payment, error)
}

// ExpenseServiceInterface defines the interface for expense service
type ExpenseServiceInterface interface {
	Create(ctx context.Context, actor auth.Actor, req *CreateExpenseRequest) (*models.Expense, error)
	List(ctx context.Context, actor auth.Actor, month, year string) ([]models.Expense, error)
	Update(ctx context.Context, actor auth.Actor, id string, req *UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
	Export(ctx context.Context, actor auth.Actor, month, year string) (*ExpenseExport, error)
}

// DashboardServiceInterface defines the interface for the monthly analytics rollup
type DashboardServiceInterface interface {
	Compute(ctx context.Context, actor auth.Actor, month, year string) (*DashboardStats, error)
}
