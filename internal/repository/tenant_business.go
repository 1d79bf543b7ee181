package repository

import (
	"context"

	"pg-management-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantBusinessRepository handles database operations for tenant businesses
type TenantBusinessRepository struct {
	db *gorm.DB
}

// NewTenantBusinessRepository creates a new tenant business repository
func NewTenantBusinessRepository(db *gorm.DB) *TenantBusinessRepository {
	return &TenantBusinessRepository{db: db}
}

// GetByName retrieves a tenant business by its unique name
func (r *TenantBusinessRepository) GetByName(ctx context.Context, name string) (*models.TenantBusiness, error) {
	var business models.TenantBusiness
	if err := r.db.WithContext(ctx).First(&business, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &business, nil
}
