package repository

import (
	"context"

	"pg-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreateAndMarkPaid inserts the payment and flips its tenant to Paid in one transaction.
// Returns gorm.ErrRecordNotFound when the tenant no longer exists in the payment's tenant business.
func (r *PaymentRepository) CreateAndMarkPaid(ctx context.Context, payment *models.Payment) error {
	payment.PaymentDate = payment.PaymentDate.UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tenant{}).
			Where("id = ? AND tenant_business_id = ?", payment.TenantID, payment.TenantBusinessID).
			Update("payment_status", models.PaymentStatusPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(payment).Error
	})
}

// ListByTenant returns the payments of a tenant, newest first
func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// SumBetween totals the payments of a tenant business dated inside window
func (r *PaymentRepository) SumBetween(ctx context.Context, tenantBusinessID uuid.UUID, window DateRange) (decimal.Decimal, error) {
	return sumAmounts(r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("tenant_business_id = ?", tenantBusinessID).
		Where("payment_date >= ? AND payment_date < ?", window.From.UTC(), window.To.UTC()))
}

// sumAmounts runs COALESCE(SUM(amount), 0) over query
func sumAmounts(query *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := query.Select("COALESCE(SUM(amount), 0)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
