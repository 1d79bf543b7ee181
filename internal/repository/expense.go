package repository

import (
	"context"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	expense.ExpenseDate = expense.ExpenseDate.UTC()
	return r.db.WithContext(ctx).Create(expense).Error
}

// GetByID retrieves an expense by ID
func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// List returns the expenses of a tenant business newest first, optionally limited to window
func (r *ExpenseRepository) List(ctx context.Context, tenantBusinessID uuid.UUID, window *DateRange) ([]models.Expense, error) {
	expenses := []models.Expense{}
	query := r.db.WithContext(ctx).Where("tenant_business_id = ?", tenantBusinessID)
	if window != nil {
		query = query.Where("expense_date >= ? AND expense_date < ?", window.From.UTC(), window.To.UTC())
	}
	if err := query.Order("expense_date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update updates an expense
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	expense.ExpenseDate = expense.ExpenseDate.UTC()
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense
func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumBetween totals the expenses of a tenant business dated inside window
func (r *ExpenseRepository) SumBetween(ctx context.Context, tenantBusinessID uuid.UUID, window DateRange) (decimal.Decimal, error) {
	return sumAmounts(r.db.WithContext(ctx).Model(&models.Expense{}).
		Where("tenant_business_id = ?", tenantBusinessID).
		Where("expense_date >= ? AND expense_date < ?", window.From.UTC(), window.To.UTC()))
}
