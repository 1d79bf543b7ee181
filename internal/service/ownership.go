package service

import (
	"context"
	"errors"
	"fmt"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedProperty loads a property and checks it belongs to the actor's tenant business
func ownedProperty(ctx context.Context, repo repository.PropertyRepositoryInterface, actor auth.Actor, rawID string) (*models.Property, error) {
	id, err := parseID(rawID, apperrors.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}
	property, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !actor.Owns(property.TenantBusinessID) {
		return nil, apperrors.ErrPropertyForbidden
	}
	return property, nil
}

// ownedTenant loads a renter, checks it belongs to the actor's tenant business and
// that it lives in the property named by the route
func ownedTenant(ctx context.Context, repo repository.TenantRepositoryInterface, actor auth.Actor, rawPropertyID, rawTenantID string) (*models.Tenant, error) {
	tenantID, err := parseID(rawTenantID, apperrors.ErrTenantNotFound)
	if err != nil {
		return nil, err
	}
	tenant, err := repo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if !actor.Owns(tenant.TenantBusinessID) {
		return nil, apperrors.ErrTenantForbidden
	}
	if propertyID, err := uuid.Parse(rawPropertyID); err != nil || tenant.PropertyID != propertyID {
		return nil, apperrors.ErrTenantNotFound
	}
	return tenant, nil
}
