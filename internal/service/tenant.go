package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/logger"
	"pg-management-backend/internal/metrics"
	"pg-management-backend/internal/repository"
	"pg-management-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TenantService handles business logic for renters
type TenantService struct {
	repo         repository.TenantRepositoryInterface
	propertyRepo repository.PropertyRepositoryInterface
	documents    storage.DocumentStore
	validator    *validator.Validate
	now          func() time.Time
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, propertyRepo repository.PropertyRepositoryInterface, documents storage.DocumentStore, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:         repo,
		propertyRepo: propertyRepo,
		documents:    documents,
		validator:    validator,
		now:          time.Now,
	}
}

// CreateTenantRequest represents the request to add a renter to a property
type CreateTenantRequest struct {
	Name           string               `json:"name" validate:"required,max=200" example:"Ravi Kumar"`
	Gender         models.Gender        `json:"gender" validate:"required" example:"Male"`
	RentAmount     decimal.Decimal      `json:"rentAmount" swaggertype:"number" example:"8000"`
	RoomNumber     string               `json:"roomNumber" validate:"required,max=50" example:"101"`
	PaymentStatus  models.PaymentStatus `json:"paymentStatus,omitempty" example:"Unpaid"`
	MobileNumber   string               `json:"mobileNumber" validate:"required,max=20" example:"9876543210"`
	WhatsappNumber string               `json:"whatsappNumber,omitempty" validate:"max=20"`
}

// UpdateTenantRequest represents a partial renter update; nil, blank and zero fields are left
// unchanged. whatsappNumber is the exception and may be cleared with an empty string.
type UpdateTenantRequest struct {
	Name           *string               `json:"name,omitempty" validate:"omitempty,max=200"`
	Gender         *models.Gender        `json:"gender,omitempty"`
	RentAmount     *decimal.Decimal      `json:"rentAmount,omitempty" swaggertype:"number"`
	RoomNumber     *string               `json:"roomNumber,omitempty" validate:"omitempty,max=50"`
	PaymentStatus  *models.PaymentStatus `json:"paymentStatus,omitempty"`
	MobileNumber   *string               `json:"mobileNumber,omitempty" validate:"omitempty,max=20"`
	WhatsappNumber *string               `json:"whatsappNumber,omitempty" validate:"omitempty,max=20"`
}

// DocumentUploadResponse is returned after a document is attached to a renter
type DocumentUploadResponse struct {
	Message     string         `json:"message" example:"Document uploaded successfully"`
	DocumentURL string         `json:"documentUrl"`
	Tenant      *models.Tenant `json:"tenant"`
}

// Create adds a renter to one of the actor's properties
func (s *TenantService) Create(ctx context.Context, actor auth.Actor, propertyID string, req *CreateTenantRequest) (*models.Tenant, error) {
	property, err := ownedProperty(ctx, s.propertyRepo, actor, propertyID)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)
	req.WhatsappNumber = strings.TrimSpace(req.WhatsappNumber)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Gender.IsValid() {
		return nil, apperrors.NewValidationError("gender", "must be one of: Male, Female, Other")
	}
	if err := requirePositive("rentAmount", req.RentAmount); err != nil {
		return nil, err
	}
	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentStatusUnpaid
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("paymentStatus", "must be one of: Paid, Unpaid, Overdue")
	}

	tenant := &models.Tenant{
		Name:             req.Name,
		Gender:           req.Gender,
		RentAmount:       req.RentAmount,
		RoomNumber:       req.RoomNumber,
		PaymentStatus:    status,
		MobileNumber:     req.MobileNumber,
		WhatsappNumber:   req.WhatsappNumber,
		PropertyID:       property.ID,
		TenantBusinessID: property.TenantBusinessID,
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

// List returns the renters of one of the actor's properties
func (s *TenantService) List(ctx context.Context, actor auth.Actor, propertyID string) ([]models.Tenant, error) {
	property, err := ownedProperty(ctx, s.propertyRepo, actor, propertyID)
	if err != nil {
		return nil, err
	}
	tenants, err := s.repo.ListByProperty(ctx, property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// Get returns one renter of one of the actor's properties
func (s *TenantService) Get(ctx context.Context, actor auth.Actor, propertyID, tenantID string) (*models.Tenant, error) {
	return ownedTenant(ctx, s.repo, actor, propertyID, tenantID)
}

// Update applies the supplied fields to a renter
func (s *TenantService) Update(ctx context.Context, actor auth.Actor, propertyID, tenantID string, req *UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := ownedTenant(ctx, s.repo, actor, propertyID, tenantID)
	if err != nil {
		return nil, err
	}
	if err := s.applyUpdate(tenant, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) applyUpdate(tenant *models.Tenant, req *UpdateTenantRequest) error {
	var err error
	req.Name = presentString(req.Name)
	req.RoomNumber = presentString(req.RoomNumber)
	req.MobileNumber = presentString(req.MobileNumber)
	if req.RentAmount, err = presentAmount("rentAmount", req.RentAmount); err != nil {
		return err
	}
	if req.Gender != nil && *req.Gender == "" {
		req.Gender = nil
	}
	if req.PaymentStatus != nil && *req.PaymentStatus == "" {
		req.PaymentStatus = nil
	}
	if req.WhatsappNumber != nil {
		trimmed := strings.TrimSpace(*req.WhatsappNumber)
		req.WhatsappNumber = &trimmed
	}
	if err := validate(s.validator, req); err != nil {
		return err
	}
	if req.Gender != nil && !req.Gender.IsValid() {
		return apperrors.NewValidationError("gender", "must be one of: Male, Female, Other")
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.IsValid() {
		return apperrors.NewValidationError("paymentStatus", "must be one of: Paid, Unpaid, Overdue")
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Gender != nil {
		tenant.Gender = *req.Gender
	}
	if req.RentAmount != nil {
		tenant.RentAmount = *req.RentAmount
	}
	if req.RoomNumber != nil {
		tenant.RoomNumber = *req.RoomNumber
	}
	if req.PaymentStatus != nil {
		tenant.PaymentStatus = *req.PaymentStatus
	}
	if req.MobileNumber != nil {
		tenant.MobileNumber = *req.MobileNumber
	}
	if req.WhatsappNumber != nil {
		tenant.WhatsappNumber = *req.WhatsappNumber
	}
	return nil
}

// Delete removes a renter. Its payments are kept as revenue history.
func (s *TenantService) Delete(ctx context.Context, actor auth.Actor, propertyID, tenantID string) error {
	tenant, err := ownedTenant(ctx, s.repo, actor, propertyID, tenantID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tenant.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

// UploadDocument stores an identity document for a renter and records its URL
func (s *TenantService) UploadDocument(ctx context.Context, actor auth.Actor, propertyID, tenantID string, file *multipart.FileHeader) (*DocumentUploadResponse, error) {
	if file == nil {
		return nil, apperrors.ErrMissingDocument
	}
	if _, err := ownedProperty(ctx, s.propertyRepo, actor, propertyID); err != nil {
		return nil, err
	}
	tenant, err := ownedTenant(ctx, s.repo, actor, propertyID, tenantID)
	if err != nil {
		return nil, err
	}

	body, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer body.Close()

	key := storage.DocumentKey(file.Filename, s.now())
	url, err := s.documents.Put(ctx, key, file.Header.Get("Content-Type"), body, file.Size)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDocumentURL(ctx, tenant.ID, url); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to save document url: %w", err)
	}
	tenant.DocumentURL = url

	metrics.RecordDocumentUpload()
	logger.WithContext(ctx).WithField("tenant_id", tenant.ID.String()).Info("tenant document uploaded")

	return &DocumentUploadResponse{
		Message:     "Document uploaded successfully",
		DocumentURL: url,
		Tenant:      tenant,
	}, nil
}
