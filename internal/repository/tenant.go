package repository

import (
	"context"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for renters
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// ListByProperty returns the tenants of a property ordered by room number
func (r *TenantRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("room_number ASC, name ASC").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// CountByProperty counts the tenants living in a property
func (r *TenantRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error
	return count, err
}

// CountByTenantBusiness counts the tenants of a tenant business, optionally filtered by payment status
func (r *TenantRepository) CountByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID, status *models.PaymentStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("tenant_business_id = ?", tenantBusinessID)
	if status != nil {
		query = query.Where("payment_status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

// Update updates a tenant
func (r *TenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// UpdateDocumentURL replaces only the document reference of a tenant
func (r *TenantRepository) UpdateDocumentURL(ctx context.Context, id uuid.UUID, url string) error {
	res := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("id = ?", id).
		Update("document_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a tenant. Payments recorded against it are kept.
func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Tenant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
