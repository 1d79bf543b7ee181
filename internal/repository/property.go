package repository

import (
	"context"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// ListByTenantBusiness returns all properties of a tenant business, oldest first
func (r *PropertyRepository) ListByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.db.WithContext(ctx).
		Where("tenant_business_id = ?", tenantBusinessID).
		Order("created_at ASC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// CountByTenantBusiness counts the properties of a tenant business
func (r *PropertyRepository) CountByTenantBusiness(ctx context.Context, tenantBusinessID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("tenant_business_id = ?", tenantBusinessID).
		Count(&count).Error
	return count, err
}

// Update updates a property
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

// Delete deletes a property
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
