package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PropertyService handles business logic for properties
type PropertyService struct {
	repo       repository.PropertyRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:       repo,
		tenantRepo: tenantRepo,
		validator:  validator,
	}
}

// CreatePropertyRequest represents the request to create a property
type CreatePropertyRequest struct {
	Name    string `json:"name" validate:"required,max=200" example:"Green View Residency"`
	Address string `json:"address" validate:"required,max=500" example:"12 MG Road, Bengaluru"`
}

// UpdatePropertyRequest represents a partial property update; nil and blank fields are left unchanged
type UpdatePropertyRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

// Create creates a property owned by the actor's tenant business
func (s *PropertyService) Create(ctx context.Context, actor auth.Actor, req *CreatePropertyRequest) (*models.Property, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	property := &models.Property{
		Name:             req.Name,
		Address:          req.Address,
		TenantBusinessID: actor.TenantBusinessID,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

// List returns the actor's properties
func (s *PropertyService) List(ctx context.Context, actor auth.Actor) ([]models.Property, error) {
	properties, err := s.repo.ListByTenantBusiness(ctx, actor.TenantBusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// Get returns one of the actor's properties
func (s *PropertyService) Get(ctx context.Context, actor auth.Actor, id string) (*models.Property, error) {
	return ownedProperty(ctx, s.repo, actor, id)
}

// Update applies the supplied fields to one of the actor's properties
func (s *PropertyService) Update(ctx context.Context, actor auth.Actor, id string, req *UpdatePropertyRequest) (*models.Property, error) {
	property, err := ownedProperty(ctx, s.repo, actor, id)
	if err != nil {
		return nil, err
	}

	name, address := presentString(req.Name), presentString(req.Address)
	req.Name, req.Address = name, address
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if name != nil {
		property.Name = *name
	}
	if address != nil {
		property.Address = *address
	}
	if err := s.repo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

// Delete removes one of the actor's properties. Refused while tenants still live there.
func (s *PropertyService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	property, err := ownedProperty(ctx, s.repo, actor, id)
	if err != nil {
		return err
	}

	occupants, err := s.tenantRepo.CountByProperty(ctx, property.ID)
	if err != nil {
		return fmt.Errorf("failed to count tenants: %w", err)
	}
	if occupants > 0 {
		return apperrors.ErrPropertyHasTenants
	}

	if err := s.repo.Delete(ctx, property.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}
