package repository

import (
	"context"
	"strings"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateWithTenantBusiness inserts the business and its first account atomically.
// A unique violation on either row surfaces as gorm.ErrDuplicatedKey and nothing is persisted.
func (r *AccountRepository) CreateWithTenantBusiness(ctx context.Context, business *models.TenantBusiness, account *models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(business).Error; err != nil {
			return err
		}
		account.TenantBusinessID = business.ID
		account.Email = strings.ToLower(strings.TrimSpace(account.Email))
		return tx.Omit("TenantBusiness").Create(account).Error
	})
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail retrieves an account by email, case-insensitively
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&account, "email = ?", normalized).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
