package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/logger"
	"pg-management-backend/internal/metrics"
	"pg-management-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService records rent payments and keeps renter status in step
type PaymentService struct {
	repo       repository.PaymentRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	location   *time.Location
	now        func() time.Time
}

// NewPaymentService creates a new payment service. Date-only payment dates are read in location.
func NewPaymentService(repo repository.PaymentRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, location *time.Location) *PaymentService {
	if location == nil {
		location = time.Local
	}
	return &PaymentService{
		repo:       repo,
		tenantRepo: tenantRepo,
		location:   location,
		now:        time.Now,
	}
}

// RecordPaymentRequest represents the request to record a payment
type RecordPaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount" swaggertype:"number" example:"8000"`
	PaymentDate   *string              `json:"paymentDate,omitempty" example:"2025-10-05"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty" example:"UPI"`
}

// PaymentRecordedResponse is returned after a payment is recorded
type PaymentRecordedResponse struct {
	Message string          `json:"message" example:"Payment recorded and tenant status updated successfully"`
	Payment *models.Payment `json:"payment"`
}

// Record stores a payment for a renter and marks the renter Paid, atomically
func (s *PaymentService) Record(ctx context.Context, actor auth.Actor, propertyID, tenantID string, req *RecordPaymentRequest) (*PaymentRecordedResponse, error) {
	tenant, err := ownedTenant(ctx, s.tenantRepo, actor, propertyID, tenantID)
	if err != nil {
		return nil, err
	}

	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, apperrors.NewValidationError("paymentMethod", "must be one of: Cash, UPI, Bank Transfer, Other")
	}
	paidAt, err := parseDate("paymentDate", req.PaymentDate, s.location, s.now())
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Amount:           req.Amount,
		PaymentDate:      paidAt,
		PaymentMethod:    method,
		TenantID:         tenant.ID,
		PropertyID:       tenant.PropertyID,
		TenantBusinessID: tenant.TenantBusinessID,
	}
	if err := s.repo.CreateAndMarkPaid(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	metrics.RecordPayment(string(method))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id":  tenant.ID.String(),
		"payment_id": payment.ID.String(),
	}).Info("payment recorded")

	return &PaymentRecordedResponse{
		Message: "Payment recorded and tenant status updated successfully",
		Payment: payment,
	}, nil
}

// ListForTenant returns a renter's payments, newest first
func (s *PaymentService) ListForTenant(ctx context.Context, actor auth.Actor, propertyID, tenantID string) ([]models.Payment, error) {
	tenant, err := ownedTenant(ctx, s.tenantRepo, actor, propertyID, tenantID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
