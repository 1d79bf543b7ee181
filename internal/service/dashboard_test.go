package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pg-management-backend/internal/auth"
	"pg-management-backend/internal/database/models"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/mocks"
	"pg-management-backend/internal/repository"
	"pg-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPropertyRepo *mocks.MockPropertyRepositoryInterface
	mockTenantRepo   *mocks.MockTenantRepositoryInterface
	mockPaymentRepo  *mocks.MockPaymentRepositoryInterface
	mockExpenseRepo  *mocks.MockExpenseRepositoryInterface
	dashboard        *service.DashboardService
	actor            auth.Actor
	ctx              context.Context
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPropertyRepo = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.mockPaymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.mockExpenseRepo = mocks.NewMockExpenseRepositoryInterface(suite.ctrl)
	suite.dashboard = service.NewDashboardService(suite.mockPropertyRepo, suite.mockTenantRepo, suite.mockPaymentRepo, suite.mockExpenseRepo, time.UTC)
	suite.actor = auth.Actor{AccountID: uuid.New(), TenantBusinessID: uuid.New()}
	suite.ctx = context.Background()
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestCompute_Rollup() {
	tb := suite.actor.TenantBusinessID
	october := repository.DateRange{
		From: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	overdue := models.PaymentStatusOverdue

	suite.mockPropertyRepo.EXPECT().CountByTenantBusiness(gomock.Any(), tb).Return(int64(2), nil)
	suite.mockTenantRepo.EXPECT().CountByTenantBusiness(gomock.Any(), tb, (*models.PaymentStatus)(nil)).Return(int64(5), nil)
	suite.mockTenantRepo.EXPECT().CountByTenantBusiness(gomock.Any(), tb, &overdue).Return(int64(1), nil)
	suite.mockPaymentRepo.EXPECT().SumBetween(gomock.Any(), tb, october).Return(decimal.NewFromInt(15000), nil)
	suite.mockExpenseRepo.EXPECT().SumBetween(gomock.Any(), tb, october).Return(decimal.RequireFromString("3200.50"), nil)

	stats, err := suite.dashboard.Compute(suite.ctx, suite.actor, "10", "2025")

	suite.Require().NoError(err)
	suite.Equal(service.Period{Month: 10, Year: 2025}, stats.AnalyticsFor)
	suite.Equal(int64(2), stats.TotalProperties)
	suite.Equal(int64(5), stats.TotalTenants)
	suite.Equal(int64(1), stats.OverdueTenants)
	suite.Equal("15000", stats.MonthlyRevenue.String())
	suite.Equal("3200.5", stats.MonthlyExpenses.String())
	suite.Equal("11799.5", stats.MonthlyProfit.String())
}

func (suite *DashboardServiceTestSuite) TestCompute_NegativeProfit() {
	suite.mockPropertyRepo.EXPECT().CountByTenantBusiness(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	suite.mockTenantRepo.EXPECT().CountByTenantBusiness(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)
	suite.mockPaymentRepo.EXPECT().SumBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
	suite.mockExpenseRepo.EXPECT().SumBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(500), nil)

	stats, err := suite.dashboard.Compute(suite.ctx, suite.actor, "1", "2024")

	suite.Require().NoError(err)
	suite.True(stats.MonthlyProfit.Equal(decimal.NewFromInt(-500)))
}

func (suite *DashboardServiceTestSuite) TestCompute_InvalidPeriod() {
	for _, tc := range []struct{ month, year string }{{"0", "2025"}, {"abc", ""}, {"5", "99"}} {
		_, err := suite.dashboard.Compute(suite.ctx, suite.actor, tc.month, tc.year)
		suite.True(apperrors.IsValidation(err), "month=%s year=%s", tc.month, tc.year)
	}
}

func (suite *DashboardServiceTestSuite) TestCompute_StoreFailure() {
	suite.mockPropertyRepo.EXPECT().CountByTenantBusiness(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

	_, err := suite.dashboard.Compute(suite.ctx, suite.actor, "", "")

	suite.Error(err)
	suite.False(apperrors.IsValidation(err))
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
