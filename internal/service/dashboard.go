package service

import (
	"context"
	"fmt"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	"pg-management-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService computes the monthly rollup for a tenant business
type DashboardService struct {
	propertyRepo repository.PropertyRepositoryInterface
	tenantRepo   repository.TenantRepositoryInterface
	paymentRepo  repository.PaymentRepositoryInterface
	expenseRepo  repository.ExpenseRepositoryInterface
	location     *time.Location
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service. Month windows are computed in location.
func NewDashboardService(
	propertyRepo repository.PropertyRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	expenseRepo repository.ExpenseRepositoryInterface,
	location *time.Location,
) *DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardService{
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		paymentRepo:  paymentRepo,
		expenseRepo:  expenseRepo,
		location:     location,
		now:          time.Now,
	}
}

// DashboardStats is the monthly analytics rollup
type DashboardStats struct {
	AnalyticsFor    Period          `json:"analyticsFor"`
	TotalProperties int64           `json:"totalProperties" example:"3"`
	TotalTenants    int64           `json:"totalTenants" example:"42"`
	OverdueTenants  int64           `json:"overdueTenants" example:"4"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue" swaggertype:"number" example:"310000"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" swaggertype:"number" example:"85000"`
	MonthlyProfit   decimal.Decimal `json:"monthlyProfit" swaggertype:"number" example:"225000"`
}

// Compute returns counts for the actor's tenant business and revenue, expenses and
// profit for the requested month (current month by default)
func (s *DashboardService) Compute(ctx context.Context, actor auth.Actor, month, year string) (*DashboardStats, error) {
	period, err := resolvePeriod(month, year, s.now().In(s.location))
	if err != nil {
		return nil, err
	}
	window := period.Window(s.location)
	business := actor.TenantBusinessID

	totalProperties, err := s.propertyRepo.CountByTenantBusiness(ctx, business)
	if err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}
	totalTenants, err := s.tenantRepo.CountByTenantBusiness(ctx, business, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}
	overdue := models.PaymentStatusOverdue
	overdueTenants, err := s.tenantRepo.CountByTenantBusiness(ctx, business, &overdue)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue tenants: %w", err)
	}

	revenue, err := s.paymentRepo.SumBetween(ctx, business, window)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}
	expenses, err := s.expenseRepo.SumBetween(ctx, business, window)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &DashboardStats{
		AnalyticsFor:    period,
		TotalProperties: totalProperties,
		TotalTenants:    totalTenants,
		OverdueTenants:  overdueTenants,
		MonthlyRevenue:  revenue,
		MonthlyExpenses: expenses,
		MonthlyProfit:   revenue.Sub(expenses),
	}, nil
}
